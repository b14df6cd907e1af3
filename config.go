package seqbusmap

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultVehiclePositionsURL = "https://gtfsrt.api.translink.com.au/api/realtime/SEQ/VehiclePositions/Bus"
	defaultTripUpdatesURL      = "https://gtfsrt.api.translink.com.au/api/realtime/SEQ/TripUpdates/Bus"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

type FeedConfig struct {
	VehiclePositionsURL    string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TripUpdatesURL         string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	RefreshIntervalSeconds int    `yaml:"refreshIntervalSeconds" validate:"gte=0"`
	TimeoutSeconds         int    `yaml:"timeoutSeconds" validate:"gte=0"`
	Timezone               string `yaml:"timezone"`
}

// MapConfig holds the initial filter selection the page opens with.
type MapConfig struct {
	DefaultRegion string `yaml:"defaultRegion"`
	DefaultRoute  string `yaml:"defaultRoute"`
}

type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Feed   FeedConfig   `yaml:"feed"`
	Map    MapConfig    `yaml:"map"`
}

var Config AppConfig

// LoadAppConfig loads the application configuration from config.yml and the
// environment. A missing config file is not an error: every setting has a
// usable default, so the binary runs with zero configuration.
func LoadAppConfig() error {
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{"config.yml", "./config/config.yml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}

	// Environment overrides win over the file.
	if v := os.Getenv("SEQBUS_VEHICLE_POSITIONS_URL"); v != "" {
		cfg.Feed.VehiclePositionsURL = v
	}
	if v := os.Getenv("SEQBUS_TRIP_UPDATES_URL"); v != "" {
		cfg.Feed.TripUpdatesURL = v
	}
	if v := os.Getenv("SEQBUS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Feed); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Feed.VehiclePositionsURL == "" {
		cfg.Feed.VehiclePositionsURL = defaultVehiclePositionsURL
	}
	if cfg.Feed.TripUpdatesURL == "" {
		cfg.Feed.TripUpdatesURL = defaultTripUpdatesURL
	}
	if cfg.Feed.RefreshIntervalSeconds == 0 {
		cfg.Feed.RefreshIntervalSeconds = 60
	}
	if cfg.Feed.TimeoutSeconds == 0 {
		cfg.Feed.TimeoutSeconds = 10
	}
	if cfg.Feed.Timezone == "" {
		cfg.Feed.Timezone = "Australia/Brisbane"
	}
	if cfg.Map.DefaultRegion == "" {
		cfg.Map.DefaultRegion = "Gold Coast"
	}
	if cfg.Map.DefaultRoute == "" {
		cfg.Map.DefaultRoute = "700"
	}
}

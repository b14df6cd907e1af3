package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	seqbusmap "github.com/theoremus-urban-solutions/seq-bus-map"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	vehiclePositions := flag.String("vehiclePositions", "", "GTFS-RT VehiclePositions URL (overrides config)")
	tripUpdates := flag.String("tripUpdates", "", "GTFS-RT TripUpdates URL (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	seqbusmap.InitLogging()
	if err := seqbusmap.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *vehiclePositions != "" {
		seqbusmap.Config.Feed.VehiclePositionsURL = *vehiclePositions
	}
	if *tripUpdates != "" {
		seqbusmap.Config.Feed.TripUpdatesURL = *tripUpdates
	}
	if *port != 0 {
		seqbusmap.Config.Server.Port = *port
	}

	app := seqbusmap.NewApp(seqbusmap.Config)

	switch *mode {
	case "serve":
		seqbusmap.StartServer(app)
		seqbusmap.HandleGracefulShutdown()
	case "oneshot":
		snap, asOf := app.FetchOnce()
		if snap.Empty() {
			log.Fatal("no vehicles decoded")
		}
		fmt.Printf("as of %s\n", asOf)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap.Vehicles); err != nil {
			log.Fatalf("encoding snapshot: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

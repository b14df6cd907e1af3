package seqbusmap

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

var server *http.Server

// App bundles the shared per-process state the handlers need: the refresh
// cache, the configuration it was built from, and the display timezone.
type App struct {
	cache   *Cache
	cfg     AppConfig
	loc     *time.Location
	metrics *Collector
}

func NewApp(cfg AppConfig) *App {
	loc := loadLocation(cfg.Feed.Timezone)
	feed := NewTranslinkFeed(
		cfg.Feed.VehiclePositionsURL,
		cfg.Feed.TripUpdatesURL,
		time.Duration(cfg.Feed.TimeoutSeconds)*time.Second,
		loc,
	)
	metrics := NewCollector()
	cache := NewCache(feed, time.Duration(cfg.Feed.RefreshIntervalSeconds)*time.Second).WithObserver(metrics)
	return &App{cache: cache, cfg: cfg, loc: loc, metrics: metrics}
}

// FetchOnce forces a single refresh and returns the merged snapshot, for
// one-shot CLI use.
func (a *App) FetchOnce() (Snapshot, time.Time) {
	return a.cache.GetLiveData()
}

func (a *App) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", a.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/health", a.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", a.metrics.Handler()).Methods(http.MethodGet)
	return r
}

func StartServer(a *App) {
	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

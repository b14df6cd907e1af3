package seqbusmap

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RefreshObserver receives refresh lifecycle events from the cache.
type RefreshObserver interface {
	RefreshSucceeded(vehicles int)
	RefreshFailed()
	FetchDuration(d time.Duration)
}

type nopObserver struct{}

func (nopObserver) RefreshSucceeded(int)        {}
func (nopObserver) RefreshFailed()              {}
func (nopObserver) FetchDuration(time.Duration) {}

// Collector owns the prometheus registry for the process.
type Collector struct {
	reg *prometheus.Registry

	Refreshes       prometheus.Counter
	RefreshFailures prometheus.Counter
	VehiclesTracked prometheus.Gauge
	FetchSeconds    prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seqbus_refreshes_total",
			Help: "Total successful feed refreshes.",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seqbus_refresh_failures_total",
			Help: "Total refresh attempts that failed or decoded no vehicles.",
		}),
		VehiclesTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seqbus_vehicles_tracked",
			Help: "Vehicles in the current merged snapshot.",
		}),
		FetchSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seqbus_fetch_duration_seconds",
			Help:    "Wall time to fetch and decode both feeds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.Refreshes, c.RefreshFailures, c.VehiclesTracked, c.FetchSeconds)
	return c
}

func (c *Collector) RefreshSucceeded(vehicles int) {
	c.Refreshes.Inc()
	c.VehiclesTracked.Set(float64(vehicles))
}

func (c *Collector) RefreshFailed() {
	c.RefreshFailures.Inc()
}

func (c *Collector) FetchDuration(d time.Duration) {
	c.FetchSeconds.Observe(d.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

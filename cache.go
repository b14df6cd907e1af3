package seqbusmap

import (
	"log"
	"sync"
	"time"
)

// FeedSource supplies the two decoded feed streams. TranslinkFeed is the
// production implementation.
type FeedSource interface {
	Vehicles() ([]VehicleRecord, error)
	TripUpdates() ([]TripUpdateRecord, error)
}

// Cache is the single-slot refresh cache: the current merged snapshot, the
// snapshot from the previous successful cycle, and the time of the last
// successful refresh. There is no eviction; each successful refresh
// overwrites the slot wholesale.
type Cache struct {
	source   FeedSource
	interval time.Duration
	now      func() time.Time
	metrics  RefreshObserver

	mu            sync.Mutex
	current       Snapshot
	previous      Snapshot
	lastRefreshed time.Time
}

func NewCache(source FeedSource, interval time.Duration) *Cache {
	return &Cache{
		source:   source,
		interval: interval,
		now:      time.Now,
		metrics:  nopObserver{},
	}
}

// WithObserver attaches a refresh observer (metrics). Nil resets to a no-op.
func (c *Cache) WithObserver(o RefreshObserver) *Cache {
	if o == nil {
		o = nopObserver{}
	}
	c.metrics = o
	return c
}

// GetLiveData returns the merged snapshot and the time it was produced,
// refreshing from the feeds when the cached one is older than the refresh
// interval. Refresh failures never surface to the caller: the stale snapshot
// is served instead, and because lastRefreshed is only advanced on success,
// the next request retries immediately.
func (c *Cache) GetLiveData() (Snapshot, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.lastRefreshed.IsZero() && now.Sub(c.lastRefreshed) < c.interval {
		return c.current, c.lastRefreshed
	}

	fresh, ok := c.refresh()
	if !ok {
		if c.lastRefreshed.IsZero() {
			return c.current, now
		}
		return c.current, c.lastRefreshed
	}

	c.previous = c.current
	c.current = fresh
	c.lastRefreshed = now
	c.metrics.RefreshSucceeded(len(fresh.Vehicles))
	return c.current, c.lastRefreshed
}

// refresh fetches and merges both feeds. An error on either feed, or an empty
// decoded vehicle set, aborts the whole refresh; the caller keeps both cached
// snapshots untouched.
func (c *Cache) refresh() (Snapshot, bool) {
	start := c.now()
	vehicles, err := c.source.Vehicles()
	if err != nil {
		log.Printf("refresh failed: %v", err)
		c.metrics.RefreshFailed()
		return Snapshot{}, false
	}
	updates, err := c.source.TripUpdates()
	if err != nil {
		log.Printf("refresh failed: %v", err)
		c.metrics.RefreshFailed()
		return Snapshot{}, false
	}
	c.metrics.FetchDuration(c.now().Sub(start))
	if len(vehicles) == 0 {
		log.Printf("refresh returned no vehicles, keeping cached snapshot")
		c.metrics.RefreshFailed()
		return Snapshot{}, false
	}
	return mergeFeeds(vehicles, updates), true
}

// Current returns the cached snapshot without triggering a refresh.
func (c *Cache) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Previous returns the snapshot from one successful cycle before the current
// one. Empty until two refreshes have succeeded.
func (c *Cache) Previous() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

// LastRefreshed returns the time of the last successful refresh, zero if none.
func (c *Cache) LastRefreshed() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefreshed
}

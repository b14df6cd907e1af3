package seqbusmap

import (
	"log"
	"net/http"
	"time"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap, asOf := a.cache.GetLiveData()
	if snap.Empty() {
		http.Error(w, "Could not retrieve live bus data at the moment. Please try again later.",
			http.StatusServiceUnavailable)
		return
	}

	sel := parseFilterSelection(r.URL.Query(), a.cfg.Map)
	view := BuildView(snap, sel)
	rows := attachTrails(view.Rows, a.cache.Previous())

	interval := time.Duration(a.cfg.Feed.RefreshIntervalSeconds) * time.Second
	data := PageData{
		TrackedBuses:      len(rows),
		LastRefreshed:     clockTime(asOf, a.loc),
		NextRefresh:       clockTime(asOf.Add(interval), a.loc),
		CurrentDate:       longDate(time.Now(), a.loc),
		RefreshIntervalMS: a.cfg.Feed.RefreshIntervalSeconds * 1000,
		Timezone:          a.cfg.Feed.Timezone,
		View:              view,
		Map:               buildMapView(rows),
		HasRows:           len(rows) > 0,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, data); err != nil {
		log.Printf("render error: %v", err)
	}
}

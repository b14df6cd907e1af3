package seqbusmap

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status             string `json:"status"`
	LastRefreshedEpoch int64  `json:"last_refreshed_epoch"`
	VehiclesTracked    int    `json:"vehicles_tracked"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:          "ok",
		VehiclesTracked: len(a.cache.Current().Vehicles),
	}
	if last := a.cache.LastRefreshed(); !last.IsZero() {
		resp.LastRefreshedEpoch = last.Unix()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

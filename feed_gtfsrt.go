package seqbusmap

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// TranslinkFeed fetches and decodes the two TransLink SEQ GTFS-RT feeds.
type TranslinkFeed struct {
	vehiclePositionsURL string
	tripUpdatesURL      string
	httpClient          *http.Client
	loc                 *time.Location
}

func NewTranslinkFeed(vehiclePositionsURL, tripUpdatesURL string, timeout time.Duration, loc *time.Location) *TranslinkFeed {
	return &TranslinkFeed{
		vehiclePositionsURL: vehiclePositionsURL,
		tripUpdatesURL:      tripUpdatesURL,
		httpClient:          &http.Client{Timeout: timeout},
		loc:                 loc,
	}
}

func (f *TranslinkFeed) fetchFeed(url string) (*gtfsrtpb.FeedMessage, error) {
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	fm := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(body, fm); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return fm, nil
}

// Vehicles fetches the VehiclePositions feed and returns one record per
// vehicle entity.
func (f *TranslinkFeed) Vehicles() ([]VehicleRecord, error) {
	fm, err := f.fetchFeed(f.vehiclePositionsURL)
	if err != nil {
		return nil, fmt.Errorf("vehicle positions: %w", err)
	}

	vehicles := make([]VehicleRecord, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil {
			continue
		}
		rec := VehicleRecord{Timestamp: "N/A"}
		if v.Trip != nil {
			if v.Trip.TripId != nil {
				rec.TripID = *v.Trip.TripId
			}
			if v.Trip.RouteId != nil {
				rec.RouteID = *v.Trip.RouteId
			}
		}
		if v.Vehicle != nil && v.Vehicle.Label != nil {
			rec.VehicleID = *v.Vehicle.Label
		}
		if v.Position != nil {
			if v.Position.Latitude != nil {
				rec.Lat = float64(*v.Position.Latitude)
			}
			if v.Position.Longitude != nil {
				rec.Lon = float64(*v.Position.Longitude)
			}
		}
		if v.CurrentStopSequence != nil {
			rec.StopSequence = *v.CurrentStopSequence
		}
		if v.StopId != nil {
			rec.StopID = *v.StopId
		}
		if v.CurrentStatus != nil {
			rec.CurrentStatus = int32(*v.CurrentStatus)
		}
		if v.Timestamp != nil {
			rec.Timestamp = time.Unix(int64(*v.Timestamp), 0).In(f.loc).Format("2006-01-02 15:04:05 MST")
		}
		vehicles = append(vehicles, rec)
	}
	return vehicles, nil
}

// TripUpdates fetches the TripUpdates feed and returns one record per trip
// that carries at least one stop-time update. The delay comes from the first
// stop-time update's arrival.
func (f *TranslinkFeed) TripUpdates() ([]TripUpdateRecord, error) {
	fm, err := f.fetchFeed(f.tripUpdatesURL)
	if err != nil {
		return nil, fmt.Errorf("trip updates: %w", err)
	}

	updates := make([]TripUpdateRecord, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || len(tu.StopTimeUpdate) == 0 {
			continue
		}
		var tripID string
		if tu.Trip != nil && tu.Trip.TripId != nil {
			tripID = *tu.Trip.TripId
		}
		var delay int32
		if arr := tu.StopTimeUpdate[0].Arrival; arr != nil && arr.Delay != nil {
			delay = *arr.Delay
		}
		updates = append(updates, TripUpdateRecord{
			TripID: tripID,
			Delay:  delay,
			Status: classifyDelay(delay),
		})
	}
	return updates, nil
}

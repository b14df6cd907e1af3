package seqbusmap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func serveFeed(t *testing.T, fm *gtfsrtpb.FeedMessage) *httptest.Server {
	t.Helper()
	data, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshaling feed: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func feedHeader() *gtfsrtpb.FeedHeader {
	return &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")}
}

func TestTranslinkFeed_Vehicles(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: feedHeader(),
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("1"),
				Vehicle: &gtfsrtpb.VehiclePosition{
					Trip:                &gtfsrtpb.TripDescriptor{TripId: proto.String("t1"), RouteId: proto.String("700-3136")},
					Vehicle:             &gtfsrtpb.VehicleDescriptor{Label: proto.String("BUS42")},
					Position:            &gtfsrtpb.Position{Latitude: proto.Float32(-28.0), Longitude: proto.Float32(153.4)},
					CurrentStopSequence: proto.Uint32(7),
					StopId:              proto.String("stop-9"),
					CurrentStatus:       gtfsrtpb.VehiclePosition_IN_TRANSIT_TO.Enum(),
					Timestamp:           proto.Uint64(1700000000),
				},
			},
			// entity without a vehicle payload is skipped
			{Id: proto.String("2")},
			// vehicle without a timestamp renders "N/A"
			{
				Id: proto.String("3"),
				Vehicle: &gtfsrtpb.VehiclePosition{
					Trip:     &gtfsrtpb.TripDescriptor{TripId: proto.String("t2"), RouteId: proto.String("555-1")},
					Vehicle:  &gtfsrtpb.VehicleDescriptor{Label: proto.String("BUS43")},
					Position: &gtfsrtpb.Position{Latitude: proto.Float32(-27.5), Longitude: proto.Float32(153.0)},
				},
			},
		},
	}
	srv := serveFeed(t, fm)
	feed := NewTranslinkFeed(srv.URL, srv.URL, 10*time.Second, time.UTC)

	vehicles, err := feed.Vehicles()
	if err != nil {
		t.Fatalf("Vehicles() error: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("got %d vehicles, want 2", len(vehicles))
	}

	v := vehicles[0]
	if v.TripID != "t1" || v.RouteID != "700-3136" || v.VehicleID != "BUS42" {
		t.Errorf("identity fields wrong: %+v", v)
	}
	if v.StopSequence != 7 || v.StopID != "stop-9" {
		t.Errorf("stop fields wrong: %+v", v)
	}
	if v.CurrentStatus != int32(gtfsrtpb.VehiclePosition_IN_TRANSIT_TO) {
		t.Errorf("current status = %d", v.CurrentStatus)
	}
	if v.Timestamp != "2023-11-14 22:13:20 UTC" {
		t.Errorf("timestamp = %q", v.Timestamp)
	}
	if vehicles[1].Timestamp != "N/A" {
		t.Errorf("missing feed timestamp = %q, want N/A", vehicles[1].Timestamp)
	}
}

func TestTranslinkFeed_TripUpdates(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: feedHeader(),
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("t1")},
					StopTimeUpdate: []*gtfsrtpb.TripUpdate_StopTimeUpdate{
						{Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Delay: proto.Int32(400)}},
						// only the first stop-time update counts
						{Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Delay: proto.Int32(-500)}},
					},
				},
			},
			// trip update without stop-time updates is skipped
			{
				Id: proto.String("2"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("t2")},
				},
			},
			// missing arrival delay defaults to 0 / on time
			{
				Id: proto.String("3"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("t3")},
					StopTimeUpdate: []*gtfsrtpb.TripUpdate_StopTimeUpdate{
						{StopId: proto.String("s1")},
					},
				},
			},
		},
	}
	srv := serveFeed(t, fm)
	feed := NewTranslinkFeed(srv.URL, srv.URL, 10*time.Second, time.UTC)

	updates, err := feed.TripUpdates()
	if err != nil {
		t.Fatalf("TripUpdates() error: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	if u := updates[0]; u.TripID != "t1" || u.Delay != 400 || u.Status != StatusDelayed {
		t.Errorf("t1 = %+v, want delay 400 Delayed", u)
	}
	if u := updates[1]; u.TripID != "t3" || u.Delay != 0 || u.Status != StatusOnTime {
		t.Errorf("t3 = %+v, want delay 0 On Time", u)
	}
}

func TestTranslinkFeed_FetchErrors(t *testing.T) {
	notOK := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(notOK.Close)
	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a protobuf"))
	}))
	t.Cleanup(garbage.Close)

	feed := NewTranslinkFeed(notOK.URL, garbage.URL, 10*time.Second, time.UTC)
	if _, err := feed.Vehicles(); err == nil {
		t.Error("non-200 response should be an error")
	}
	if _, err := feed.TripUpdates(); err == nil {
		t.Error("undecodable payload should be an error")
	}
}

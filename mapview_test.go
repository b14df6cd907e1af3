package seqbusmap

import (
	"math"
	"testing"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status DelayStatus
		want   string
	}{
		{StatusDelayed, "red"},
		{StatusEarly, "blue"},
		{StatusOnTime, "green"},
	}
	for _, tt := range tests {
		if got := statusColor(tt.status); got != tt.want {
			t.Errorf("statusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBuildMapView(t *testing.T) {
	snap := mergeFeeds([]VehicleRecord{
		vr("t1", "700-1", "A", -28.0, 153.4),
		vr("t2", "700-1", "B", -28.2, 153.2),
	}, []TripUpdateRecord{{TripID: "t1", Delay: 400, Status: StatusDelayed}})

	rows := attachTrails(snap.Vehicles, Snapshot{})
	mv := buildMapView(rows)

	if len(mv.Markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(mv.Markers))
	}
	if math.Abs(mv.CenterLat-(-28.1)) > 1e-9 || math.Abs(mv.CenterLon-153.3) > 1e-9 {
		t.Errorf("center = (%v, %v), want mean (-28.1, 153.3)", mv.CenterLat, mv.CenterLon)
	}
	if mv.Zoom != 12 {
		t.Errorf("zoom = %d, want 12", mv.Zoom)
	}
	if mv.Markers[0].Color != "red" || mv.Markers[1].Color != "green" {
		t.Errorf("marker colors = %q, %q", mv.Markers[0].Color, mv.Markers[1].Color)
	}
	if len(mv.Trails) != 0 {
		t.Errorf("trails without a previous snapshot: %v", mv.Trails)
	}
}

func TestBuildMapView_Empty(t *testing.T) {
	mv := buildMapView(nil)
	if len(mv.Markers) != 0 || mv.CenterLat != 0 {
		t.Errorf("empty view = %+v", mv)
	}
}

package seqbusmap

// DelayStatus is the schedule-adherence bucket for a trip, derived from the
// first stop-time update's arrival delay.
type DelayStatus string

const (
	StatusDelayed DelayStatus = "Delayed"
	StatusEarly   DelayStatus = "Early"
	StatusOnTime  DelayStatus = "On Time"
)

// VehicleRecord is one vehicle entity from the VehiclePositions feed.
// Records are immutable and superseded wholesale on the next poll.
type VehicleRecord struct {
	TripID        string
	RouteID       string
	VehicleID     string
	Lat           float64
	Lon           float64
	StopSequence  uint32
	StopID        string
	CurrentStatus int32
	Timestamp     string // feed-local time, "N/A" when the feed omits it
}

// TripUpdateRecord is one trip entity from the TripUpdates feed. Only the
// first stop-time update's arrival delay is used.
type TripUpdateRecord struct {
	TripID string
	Delay  int32
	Status DelayStatus
}

// MergedVehicle is a VehicleRecord joined against its trip update, with the
// derived route name and region columns.
type MergedVehicle struct {
	VehicleRecord
	Delay     int32
	Status    DelayStatus
	RouteName string
	Region    string
}

// Snapshot is the full merged dataset from one poll cycle.
type Snapshot struct {
	Vehicles []MergedVehicle
}

func (s Snapshot) Empty() bool { return len(s.Vehicles) == 0 }

package seqbusmap

import "strings"

const (
	delayedOverSeconds = 300
	earlyUnderSeconds  = -60
)

// classifyDelay buckets an arrival delay in seconds. The boundaries
// themselves (exactly 300 or exactly -60) count as on time.
func classifyDelay(delay int32) DelayStatus {
	if delay > delayedOverSeconds {
		return StatusDelayed
	}
	if delay < earlyUnderSeconds {
		return StatusEarly
	}
	return StatusOnTime
}

// classifyRegion buckets a vehicle into a Southeast Queensland region by
// latitude alone; longitude is ignored, so a vehicle far outside SEQ at a
// matching latitude lands in the wrong bucket. That matches the upstream
// behaviour and is not to be corrected here. Ranges are checked in declared
// order: Brisbane, Gold Coast, Sunshine Coast.
func classifyRegion(lat float64) string {
	switch {
	case lat >= -27.75 && lat <= -27.0:
		return "Brisbane"
	case lat >= -28.2 && lat <= -27.78:
		return "Gold Coast"
	case lat >= -26.9 && lat <= -26.3:
		return "Sunshine Coast"
	default:
		return "Other"
	}
}

// routeName strips the variant suffix from a TransLink route_id, e.g.
// "700-3136" -> "700".
func routeName(routeID string) string {
	if i := strings.Index(routeID, "-"); i >= 0 {
		return routeID[:i]
	}
	return routeID
}

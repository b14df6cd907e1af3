package seqbusmap

import (
	"log"
	"time"
)

// loadLocation resolves the configured feed timezone, falling back to UTC
// when the zone database does not know it.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

func clockTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04:05 PM MST")
}

func longDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, 02 January 2006")
}

// Package seqbusmap serves a live map of TransLink SEQ buses.
//
// It polls the GTFS-Realtime VehiclePositions and TripUpdates feeds, joins
// them by trip, classifies each vehicle by region and schedule adherence,
// and renders the result as a filterable Leaflet page. The merged snapshot
// is cached with a fixed refresh window; fetch failures serve the stale
// snapshot rather than an error.
package seqbusmap

package seqbusmap

// Trail is one animated path segment from a vehicle's position in the
// previous poll cycle to its current one.
type Trail struct {
	FromLat float64
	FromLon float64
	ToLat   float64
	ToLon   float64
}

// MapRow is a filtered snapshot row plus its movement trail, if any.
type MapRow struct {
	MergedVehicle
	Trail *Trail
}

// attachTrails looks each row's vehicle up in the previous snapshot and emits
// a trail segment when the position changed. A vehicle absent from the
// previous cycle, or one that has not moved, gets no segment. With no
// previous snapshot at all, no row gets one.
func attachTrails(rows []MergedVehicle, previous Snapshot) []MapRow {
	prevPos := make(map[string]VehicleRecord, len(previous.Vehicles))
	for _, v := range previous.Vehicles {
		if _, ok := prevPos[v.VehicleID]; !ok {
			prevPos[v.VehicleID] = v.VehicleRecord
		}
	}

	out := make([]MapRow, 0, len(rows))
	for _, r := range rows {
		row := MapRow{MergedVehicle: r}
		if p, ok := prevPos[r.VehicleID]; ok && (p.Lat != r.Lat || p.Lon != r.Lon) {
			row.Trail = &Trail{FromLat: p.Lat, FromLon: p.Lon, ToLat: r.Lat, ToLon: r.Lon}
		}
		out = append(out, row)
	}
	return out
}

package seqbusmap

// mergeFeeds left-joins vehicle positions against trip updates by trip_id.
// Every vehicle appears exactly once in the result; vehicles without a
// matching update get delay 0 and status on time. When the updates feed
// carries the same trip twice the first record wins.
func mergeFeeds(vehicles []VehicleRecord, updates []TripUpdateRecord) Snapshot {
	byTrip := make(map[string]TripUpdateRecord, len(updates))
	for _, u := range updates {
		if _, ok := byTrip[u.TripID]; !ok {
			byTrip[u.TripID] = u
		}
	}

	merged := make([]MergedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		m := MergedVehicle{
			VehicleRecord: v,
			Delay:         0,
			Status:        StatusOnTime,
			RouteName:     routeName(v.RouteID),
			Region:        classifyRegion(v.Lat),
		}
		if u, ok := byTrip[v.TripID]; ok {
			m.Delay = u.Delay
			m.Status = u.Status
		}
		merged = append(merged, m)
	}
	return Snapshot{Vehicles: merged}
}

package seqbusmap

// Marker is one bus on the map.
type Marker struct {
	Lat          float64
	Lon          float64
	Color        string
	RouteName    string
	RouteID      string
	VehicleID    string
	Status       DelayStatus
	StopSequence uint32
}

// MapView is the geometry the Leaflet template draws: one marker per row,
// one animated trail per moved vehicle, centered on the mean position.
type MapView struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   []Marker
	Trails    []Trail
}

func statusColor(s DelayStatus) string {
	switch s {
	case StatusDelayed:
		return "red"
	case StatusEarly:
		return "blue"
	default:
		return "green"
	}
}

func buildMapView(rows []MapRow) MapView {
	mv := MapView{Zoom: 12}
	if len(rows) == 0 {
		return mv
	}
	var sumLat, sumLon float64
	for _, r := range rows {
		sumLat += r.Lat
		sumLon += r.Lon
		mv.Markers = append(mv.Markers, Marker{
			Lat:          r.Lat,
			Lon:          r.Lon,
			Color:        statusColor(r.Status),
			RouteName:    r.RouteName,
			RouteID:      r.RouteID,
			VehicleID:    r.VehicleID,
			Status:       r.Status,
			StopSequence: r.StopSequence,
		})
		if r.Trail != nil {
			mv.Trails = append(mv.Trails, *r.Trail)
		}
	}
	mv.CenterLat = sumLat / float64(len(rows))
	mv.CenterLon = sumLon / float64(len(rows))
	return mv
}

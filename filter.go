package seqbusmap

import "sort"

// FilterSelection is the set of filter values chosen on the page. Zero
// values mean "use the default" for region/route/vehicle and "all available"
// for statuses.
type FilterSelection struct {
	Region   string
	Route    string
	Statuses []string
	Vehicle  string
}

// View is everything the page needs for one request: the cascading option
// lists, the selection after defaulting, and the rows to draw.
type View struct {
	RegionOptions  []string
	RouteOptions   []string
	StatusOptions  []string
	VehicleOptions []string
	Selected       FilterSelection
	Rows           []MergedVehicle
}

// BuildView derives the cascading filter options and the filtered rows from
// the current snapshot. Each option list is computed from the snapshot
// restricted by the selections above it: regions from the full snapshot,
// routes within the selected region, statuses within the selected route,
// vehicles within the selected statuses. Pure and request-scoped; nothing is
// cached across requests.
func BuildView(snap Snapshot, sel FilterSelection) View {
	all := snap.Vehicles

	regionOptions := append([]string{"All"}, uniqueSorted(all, func(v MergedVehicle) string { return v.Region })...)

	forRoutes := all
	if sel.Region != "All" {
		forRoutes = filterRows(all, func(v MergedVehicle) bool { return v.Region == sel.Region })
	}
	routeOptions := append([]string{"All"}, uniqueSorted(forRoutes, func(v MergedVehicle) string { return v.RouteName })...)

	forStatuses := forRoutes
	if sel.Route != "All" {
		forStatuses = filterRows(forRoutes, func(v MergedVehicle) bool { return v.RouteName == sel.Route })
	}
	statusOptions := uniqueSorted(forStatuses, func(v MergedVehicle) string { return string(v.Status) })

	// An empty status selection means every status present for the route.
	if len(sel.Statuses) == 0 {
		sel.Statuses = statusOptions
	}
	selected := make(map[string]bool, len(sel.Statuses))
	for _, s := range sel.Statuses {
		selected[s] = true
	}
	forVehicles := filterRows(forStatuses, func(v MergedVehicle) bool { return selected[string(v.Status)] })
	vehicleOptions := append([]string{"All"}, uniqueSorted(forVehicles, func(v MergedVehicle) string { return v.VehicleID })...)

	rows := forVehicles
	if sel.Vehicle != "All" {
		rows = filterRows(forVehicles, func(v MergedVehicle) bool { return v.VehicleID == sel.Vehicle })
	}

	return View{
		RegionOptions:  regionOptions,
		RouteOptions:   routeOptions,
		StatusOptions:  statusOptions,
		VehicleOptions: vehicleOptions,
		Selected:       sel,
		Rows:           rows,
	}
}

func filterRows(rows []MergedVehicle, keep func(MergedVehicle) bool) []MergedVehicle {
	out := make([]MergedVehicle, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func uniqueSorted(rows []MergedVehicle, key func(MergedVehicle) string) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

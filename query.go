package seqbusmap

import (
	"net/url"
	"strings"
)

// parseFilterSelection reads the page's query parameters. Missing or blank
// values fall back to the configured defaults ("All" for vehicle); the
// status parameter repeats for multi-select and stays empty when absent,
// which BuildView later resolves to every available status.
func parseFilterSelection(q url.Values, defaults MapConfig) FilterSelection {
	sel := FilterSelection{
		Region:  strings.TrimSpace(q.Get("region")),
		Route:   strings.TrimSpace(q.Get("route")),
		Vehicle: strings.TrimSpace(q.Get("vehicle")),
	}
	if sel.Region == "" {
		sel.Region = defaults.DefaultRegion
	}
	if sel.Route == "" {
		sel.Route = defaults.DefaultRoute
	}
	if sel.Vehicle == "" {
		sel.Vehicle = "All"
	}
	for _, s := range q["status"] {
		s = strings.TrimSpace(s)
		if s != "" {
			sel.Statuses = append(sel.Statuses, s)
		}
	}
	return sel
}

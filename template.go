package seqbusmap

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		return template.JS(b), err
	},
	"inSlice": func(s string, list []string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
}).ParseFS(templateFS, "templates/index.html"))

// PageData is the template context for the map page.
type PageData struct {
	TrackedBuses      int
	LastRefreshed     string
	NextRefresh       string
	CurrentDate       string
	RefreshIntervalMS int
	Timezone          string
	View              View
	Map               MapView
	HasRows           bool
}

func renderPage(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}

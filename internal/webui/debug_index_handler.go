package webui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/logging"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var debugDataTypes = []string{"statistics", "config", "years", "regimes", "frames", "scatter", "income-groups", "series"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: debugDataTypes,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render debug page", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// debugIndexHandler dumps the manager's intermediate tables. "regimes",
// "scatter" and "income-groups" take an optional year parameter.
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	manager := webUI.Manager
	dataType := r.URL.Query().Get("dataType")

	year := 0
	if years := manager.Years(); len(years) > 0 {
		year = years[len(years)-1]
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = y
	}

	var data any
	var title string

	if msg := unknownYear(manager, dataType, year); msg != "" {
		webUI.writeDebugData(w, r, "Unknown year", map[string]string{"error": msg})
		return
	}

	switch dataType {
	case "statistics":
		data = manager.Statistics()
		title = "Dataset - Statistics"
	case "config":
		data = manager.Config()
		title = "Dashboard - Config"
	case "years":
		data = map[string][]int{"histogram": manager.Years(), "scatter": manager.ScatterYears()}
		title = "Dataset - Years"
	case "regimes":
		data = manager.RegimeCounts(year)
		title = "Regimes - " + strconv.Itoa(year)
	case "frames":
		data = manager.RegimeFrames()
		title = "Regimes - Frames"
	case "scatter":
		data = manager.Scatter(year, dashboard.GroupCountries)
		title = "Scatter - Countries " + strconv.Itoa(year)
	case "income-groups":
		data = manager.Scatter(year, dashboard.GroupIncomeGroups)
		title = "Scatter - Income groups " + strconv.Itoa(year)
	case "series":
		data = manager.Table().SeriesNames()
		title = "Dataset - Series"
	default:
		data = map[string]string{
			"error": "Please use one of the following: statistics, config, years, regimes, frames, scatter, income-groups, series.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}

func unknownYear(manager *dashboard.Manager, dataType string, year int) string {
	switch dataType {
	case "regimes":
		if !manager.HasYear(year) {
			return fmt.Sprintf("Year %d is not in the dataset.", year)
		}
	case "scatter", "income-groups":
		if !manager.HasScatterYear(year) {
			return fmt.Sprintf("Year %d is outside the scatter range.", year)
		}
	}
	return ""
}

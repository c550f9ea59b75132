package restapi

import (
	"fmt"
	"net/http"
	"strconv"

	"dashboard.demografia.org/internal/charts"
	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/utils"
)

const (
	MetricUrban      = "urban"
	MetricUrbanShare = "urban-share"
)

var metricChoices = []string{MetricUrbanShare, MetricUrban}

func (api *RestAPI) regimeChartHandler(w http.ResponseWriter, r *http.Request) {
	year, fieldErrors := utils.ParseYearParam(r.URL.Query(), "year", api.Manager.Years(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	svg, err := charts.RegimeHistogram(api.Manager.RegimeCounts(year), strconv.Itoa(year))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendBytes(w, charts.ContentType, svg)
}

func (api *RestAPI) scatterChartHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	year, fieldErrors := utils.ParseYearParam(params, "year", api.Manager.ScatterYears(), nil)
	group, fieldErrors := parseGroupParam(params, fieldErrors)
	metric, fieldErrors := utils.ParseChoiceParam(params, "metric", metricChoices, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scatter := api.Manager.Scatter
	if metric == MetricUrban {
		scatter = api.Manager.UrbanScatter
	}
	points, opts := scatterChart(scatter(year, group), year, group, metric)
	svg, err := charts.Scatter(points, opts)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendBytes(w, charts.ContentType, svg)
}

// scatterChart maps points to chart markers colored by regime. Fertility is
// always on a [0,7] axis; the urban share on [0,100].
func scatterChart(points []dashboard.Point, year int, group dashboard.Group, metric string) ([]charts.Point, charts.ScatterOptions) {
	opts := charts.ScatterOptions{
		Title:       fmt.Sprintf("Fertilidad y población urbana en %d (%s)", year, group.Title()),
		XLabel:      "Tasa de fertilidad (nacimientos por mujer)",
		XMin:        0,
		XMax:        7,
		MarkerSize:  12,
		LabelPoints: group == dashboard.GroupIncomeGroups,
	}
	if group == dashboard.GroupIncomeGroups {
		opts.MarkerSize = 18
	}
	if metric == MetricUrbanShare {
		opts.YLabel = "Población urbana (% del total)"
		opts.YMin, opts.YMax = 0, 100
	} else {
		opts.YLabel = "Población urbana"
	}

	out := make([]charts.Point, len(points))
	for i, p := range points {
		y := p.UrbanShare
		if metric == MetricUrban {
			y = p.UrbanPopulation
		}
		out[i] = charts.Point{
			Label: p.Entity,
			X:     p.Fertility,
			Y:     y,
			Group: p.Regime.String(),
			Color: p.Regime.Color(),
		}
	}
	return out, opts
}

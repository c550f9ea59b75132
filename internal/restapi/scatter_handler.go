package restapi

import (
	"net/http"
	"net/url"

	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/models"
	"dashboard.demografia.org/internal/utils"
)

var groupChoices = []string{string(dashboard.GroupCountries), string(dashboard.GroupIncomeGroups)}

func parseGroupParam(params url.Values, fieldErrors map[string][]string) (dashboard.Group, map[string][]string) {
	group, fieldErrors := utils.ParseChoiceParam(params, "group", groupChoices, fieldErrors)
	return dashboard.Group(group), fieldErrors
}

func toScatterPoints(points []dashboard.Point) []models.ScatterPoint {
	out := make([]models.ScatterPoint, len(points))
	for i, p := range points {
		out[i] = models.ScatterPoint{
			Entity:          p.Entity,
			Year:            p.Year,
			Fertility:       p.Fertility,
			UrbanPopulation: p.UrbanPopulation,
			TotalPopulation: p.TotalPopulation,
			UrbanShare:      p.UrbanShare,
			Regime:          p.Regime.String(),
			Color:           p.Regime.Color(),
		}
	}
	return out
}

func (api *RestAPI) scatterHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	year, fieldErrors := utils.ParseYearParam(params, "year", api.Manager.ScatterYears(), nil)
	group, fieldErrors := parseGroupParam(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	points := toScatterPoints(api.Manager.Scatter(year, group))
	api.sendResponse(w, r, models.NewEntryResponse(models.NewScatter(year, string(group), points)))
}

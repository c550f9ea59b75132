package restapi

import (
	"net/http"

	"dashboard.demografia.org/internal/models"
	"dashboard.demografia.org/internal/utils"
)

// longSeriesHandler returns one series in long form. The series defaults to
// fertility; unknown series give an empty list.
func (api *RestAPI) longSeriesHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	series := api.Manager.Config().Fertility
	if params.Has("series") {
		sanitized, err := utils.ValidateAndSanitizeSeriesName(params.Get("series"))
		if err != nil {
			fieldErrors["series"] = append(fieldErrors["series"], err.Error())
		}
		series = sanitized
	}
	group, fieldErrors := parseGroupParam(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records := api.Manager.Long(series, group)
	list := make([]models.SeriesRecord, len(records))
	for i, rec := range records {
		list[i] = models.SeriesRecord{Entity: rec.Entity, Year: rec.Year, Value: rec.Value}
	}
	api.sendResponse(w, r, models.NewListResponse(list))
}

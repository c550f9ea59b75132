package restapi

import (
	"net/http"
	"strconv"

	"dashboard.demografia.org/internal/models"
	"dashboard.demografia.org/internal/utils"
)

func (api *RestAPI) regimesHandler(w http.ResponseWriter, r *http.Request) {
	year, fieldErrors := utils.ParseYearParam(r.URL.Query(), "year", api.Manager.Years(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scheme := api.Manager.Config().Scheme
	histogram := models.NewRegimeHistogram(strconv.Itoa(year), scheme.Version, api.Manager.RegimeCounts(year))
	api.sendResponse(w, r, models.NewEntryResponse(histogram))
}

func (api *RestAPI) regimeFramesHandler(w http.ResponseWriter, r *http.Request) {
	scheme := api.Manager.Config().Scheme
	frames := models.NewRegimeFrames(scheme.Version, scheme.Regimes(), api.Manager.RegimeFrames())
	api.sendResponse(w, r, models.NewEntryResponse(frames))
}

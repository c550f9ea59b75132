package restapi

import (
	"net/http"

	"dashboard.demografia.org/internal/models"
)

func (api *RestAPI) yearsHandler(w http.ResponseWriter, r *http.Request) {
	years := models.NewYearRange(api.Manager.Years(), api.Manager.ScatterYears())
	api.sendResponse(w, r, models.NewEntryResponse(years))
}

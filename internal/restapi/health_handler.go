package restapi

import (
	"net/http"

	"dashboard.demografia.org/internal/models"
)

type healthStatus struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
	Env    string `json:"env"`
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(healthStatus{
		Status: "ok",
		Rows:   api.Manager.Table().Len(),
		Env:    api.Config.Env.String(),
	}))
}

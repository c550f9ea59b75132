package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dashboard.demografia.org/internal/logging"
	"dashboard.demografia.org/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))
	api.sendError(w, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err)
	}
}

func (api *RestAPI) sendError(w http.ResponseWriter, status int, text string) {
	setJSONResponseType(w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(status, text)); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err, slog.Int("status", status))
	}
}

func (api *RestAPI) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, http.StatusNotFound, "resource not found")
}

func (api *RestAPI) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
}

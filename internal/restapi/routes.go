package restapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dashboard.demografia.org/internal/logging"
)

// SetRoutes registers the JSON API, chart images and exports on router, and
// installs the JSON not-found, method-not-allowed and panic handlers.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.HandlerFunc(http.MethodGet, "/api/years", api.yearsHandler)
	router.HandlerFunc(http.MethodGet, "/api/regimes", api.regimesHandler)
	router.HandlerFunc(http.MethodGet, "/api/regimes/frames", api.regimeFramesHandler)
	router.HandlerFunc(http.MethodGet, "/api/scatter", api.scatterHandler)
	router.HandlerFunc(http.MethodGet, "/api/series/long", api.longSeriesHandler)
	router.HandlerFunc(http.MethodGet, "/api/export/:file", api.exportHandler)

	router.HandlerFunc(http.MethodGet, "/charts/regimes.svg", api.regimeChartHandler)
	router.HandlerFunc(http.MethodGet, "/charts/scatter.svg", api.scatterChartHandler)

	router.NotFound = http.HandlerFunc(api.notFoundHandler)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedHandler)
	router.PanicHandler = api.panicHandler
}

func (api *RestAPI) panicHandler(w http.ResponseWriter, r *http.Request, recovered any) {
	logging.LogError(logging.FromContext(r.Context()), "handler panic", fmt.Errorf("%v", recovered),
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))
	api.sendError(w, http.StatusInternalServerError, "internal server error")
}

package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"dashboard.demografia.org/internal/app"
	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/logging"
	"dashboard.demografia.org/internal/models"
)

// createTestApi creates a RestAPI over the fixture table, without rate limiting.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	dataset := appconf.DefaultDataset()
	manager, err := dashboard.InitManager(models.FixturePath(t, "world_bank_data.csv"), dataset, nil)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:      appconf.Test,
			DataPath: models.FixturePath(t, "world_bank_data.csv"),
		},
		Dataset: dataset,
		Logger:  logging.NewStructuredLogger(io.Discard, slog.LevelDebug),
		Manager: manager,
	}
	return NewRestAPI(application)
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Middleware(router))
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))
	return resp, response
}

func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()
	server := newTestServer(t, api)

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// entry decodes the data.entry object of an envelope into a map.
func entry(t *testing.T, model models.ResponseModel) map[string]any {
	t.Helper()
	data, ok := model.Data.(map[string]any)
	require.True(t, ok, "data is %T", model.Data)
	e, ok := data["entry"].(map[string]any)
	require.True(t, ok, "entry is %T", data["entry"])
	return e
}

func list(t *testing.T, model models.ResponseModel) []any {
	t.Helper()
	data, ok := model.Data.(map[string]any)
	require.True(t, ok, "data is %T", model.Data)
	l, ok := data["list"].([]any)
	require.True(t, ok, "list is %T", data["list"])
	return l
}

func fieldErrors(t *testing.T, body []byte) map[string][]string {
	t.Helper()
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.FieldErrors
}

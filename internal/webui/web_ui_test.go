package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.demografia.org/internal/app"
	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/models"
)

func createTestWebUI(t *testing.T) *WebUI {
	t.Helper()
	manager, err := dashboard.InitManager(models.FixturePath(t, "world_bank_data.csv"), appconf.DefaultDataset(), nil)
	require.NoError(t, err)
	return NewWebUI(&app.Application{
		Config:  appconf.Config{Env: appconf.Test},
		Dataset: appconf.DefaultDataset(),
		Manager: manager,
	})
}

func get(t *testing.T, webUI *WebUI, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	router := httprouter.New()
	webUI.SetRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	return recorder, string(body)
}

func TestDashboardHandler(t *testing.T) {
	webUI := createTestWebUI(t)
	recorder, body := get(t, webUI, "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"), "page starts with a doctype")

	assert.Contains(t, body, "Fertilidad y urbanización")
	assert.Contains(t, body, "3 países")
	assert.Contains(t, body, "2 grupos de ingreso")
	assert.Contains(t, body, `src="/charts/regimes.svg?year=2023"`)
	assert.Contains(t, body, `src="/charts/scatter.svg?year=2023"`)
	assert.Contains(t, body, "[1973,1974,2000,2023][$yearIdx]")
	assert.Contains(t, body, "[1974,2000,2023][$scatterIdx]")
	assert.Contains(t, body, "data-attr:src")
	assert.Contains(t, body, `href="/api/export/long.xlsx?group=countries"`)
	assert.Contains(t, body, "Grupo de ingreso (2023)")
	assert.Contains(t, body, "80,0 %")
	assert.Contains(t, body, "25,0 %")

	for _, regime := range []string{"Bajo el equilibrio", "Equilibrio", "Duplicación", "Triplicación"} {
		assert.Contains(t, body, regime)
	}
}

func TestDashboardPageWithoutYears(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, dashboardPage(dashboardView{}).Render(&sb))
	assert.Contains(t, sb.String(), "Sin datos")
	assert.NotContains(t, sb.String(), "<img")
}

func TestYearLookup(t *testing.T) {
	assert.Equal(t, "[1999,2001][$idx]", yearLookup([]int{1999, 2001}, "idx"))
	assert.Equal(t, "[][$idx]", yearLookup(nil, "idx"))
	assert.Equal(t, 0, lastIndex(nil))
	assert.Equal(t, "", lastYear(nil))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.234.567", formatCount(1234567))
	assert.Equal(t, "85,0 %", formatPercent(85))
}

func TestDebugIndexHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"statistics", "Dataset - Statistics", "SchemeVersion"},
		{"config", "Dashboard - Config", "MinScatterYear"},
		{"years", "Dataset - Years", "histogram"},
		{"regimes", "Regimes - 2023", "Bajo el equilibrio"},
		{"frames", "Regimes - Frames", "1973"},
		{"scatter", "Scatter - Countries 2023", "Chile"},
		{"income-groups", "Scatter - Income groups 2023", "High income"},
		{"series", "Dataset - Series", "Urban population"},
		{"", "Choose a data type", "Please use one of the following"},
	}

	for _, tt := range tests {
		t.Run("dataType "+tt.dataType, func(t *testing.T) {
			recorder, body := get(t, webUI, "/debug/?dataType="+tt.dataType)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
		})
	}

	t.Run("explicit year", func(t *testing.T) {
		_, body := get(t, webUI, "/debug/?dataType=scatter&year=1974")
		assert.Contains(t, body, "Scatter - Countries 1974")
		assert.Contains(t, body, "Kenya")
	})

	t.Run("year outside the data", func(t *testing.T) {
		_, body := get(t, webUI, "/debug/?dataType=regimes&year=1900")
		assert.Contains(t, body, "<title>Unknown year</title>")
		assert.Contains(t, body, "Year 1900 is not in the dataset.")
	})

	t.Run("year before the scatter range", func(t *testing.T) {
		_, body := get(t, webUI, "/debug/?dataType=income-groups&year=1973")
		assert.Contains(t, body, "<title>Unknown year</title>")
		assert.Contains(t, body, "Year 1973 is outside the scatter range.")
	})
}

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dashboard.demografia.org/internal/app"
	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/dataset"
	"dashboard.demografia.org/internal/export"
	"dashboard.demografia.org/internal/logging"
	"dashboard.demografia.org/internal/models"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSummaryCommand(t *testing.T) {
	fixture := models.FixturePath(t, "world_bank_data.csv")

	t.Run("latest year", func(t *testing.T) {
		out, stderr, err := runCmd(t, "summary", "--data", fixture, "--log-format", "json")
		require.NoError(t, err)

		assert.Contains(t, out, "Filas: 15")
		assert.Contains(t, out, "Países: 3 · Grupos de ingreso: 2")
		assert.Contains(t, out, "Años: 1973 a 2023 (dispersión desde 1974)")
		assert.Contains(t, out, "Regímenes 2023 (clasificación v2):")
		assert.Regexp(t, `Bajo el equilibrio\s+1`, out)
		assert.Regexp(t, `Triplicación\s+0`, out)
		assert.Contains(t, stderr, `"msg":"dataset_loaded"`)
	})

	t.Run("explicit year", func(t *testing.T) {
		out, _, err := runCmd(t, "summary", "--data", fixture, "--year", "1973")
		require.NoError(t, err)
		assert.Contains(t, out, "Regímenes 1973")
		assert.Regexp(t, `Triplicación\s+2`, out)
	})

	t.Run("unknown year", func(t *testing.T) {
		_, _, err := runCmd(t, "summary", "--data", fixture, "--year", "1800")
		assert.Error(t, err)
	})

	t.Run("missing dataset", func(t *testing.T) {
		_, _, err := runCmd(t, "summary", "--data", filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, dataset.ErrDataUnavailable)
	})

	t.Run("invalid flags", func(t *testing.T) {
		_, _, err := runCmd(t, "summary", "--data", fixture, "--log-format", "xml")
		assert.ErrorContains(t, err, "log format")
	})

	t.Run("dataset config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yaml")
		require.NoError(t, os.WriteFile(path, []byte("exclude_years: [2023]\n"), 0o600))

		out, _, err := runCmd(t, "summary", "--data", fixture, "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Años: 1973 a 2000")
	})
}

func TestExportCommand(t *testing.T) {
	fixture := models.FixturePath(t, "world_bank_data.csv")
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		out := filepath.Join(dir, "long.csv")
		stdout, _, err := runCmd(t, "export", "--data", fixture, "--out", out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Exported 11 rows")

		f, err := os.Open(out)
		require.NoError(t, err)
		defer logging.SafeCloseWithLogging(f, nil, "close_test_export")
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 12)
		assert.Equal(t, export.Header, records[0])
	})

	t.Run("xlsx income groups", func(t *testing.T) {
		out := filepath.Join(dir, "groups.xlsx")
		_, _, err := runCmd(t, "export", "--data", fixture, "--out", out, "--group", "income-groups")
		require.NoError(t, err)

		f, err := excelize.OpenFile(out)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		rows, err := f.GetRows(export.SheetName)
		require.NoError(t, err)
		assert.Len(t, rows, 9, "header plus two groups over four years")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, _, err := runCmd(t, "export", "--data", fixture, "--out", filepath.Join(dir, "long.json"))
		assert.Error(t, err)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, err := runCmd(t, "export", "--data", fixture, "--out", filepath.Join(dir, "x.csv"), "--group", "planets")
		assert.Error(t, err)
	})
}

func testApplication(t *testing.T) *app.Application {
	t.Helper()
	manager, err := dashboard.InitManager(models.FixturePath(t, "world_bank_data.csv"), appconf.DefaultDataset(), nil)
	require.NoError(t, err)
	cfg := appconf.DefaultConfig()
	cfg.Env = appconf.Test
	cfg.Port = 0
	return &app.Application{
		Config:  cfg,
		Dataset: appconf.DefaultDataset(),
		Logger:  logging.NewStructuredLogger(io.Discard, cfg.SlogLevel()),
		Manager: manager,
	}
}

func TestNewHandler(t *testing.T) {
	handler, api := newHandler(testApplication(t))
	defer api.Stop()

	server := httptest.NewServer(handler)
	defer server.Close()

	for path, contentType := range map[string]string{
		"/":                   "text/html; charset=utf-8",
		"/debug/":             "text/html; charset=utf-8",
		"/api/years":          "application/json",
		"/charts/regimes.svg": "image/svg+xml",
	} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, contentType, resp.Header.Get("Content-Type"), path)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	application := testApplication(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, application) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

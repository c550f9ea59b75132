package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractFileParam(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		wantBase string
		wantExt  string
	}{
		{
			name:     "Spreadsheet",
			file:     "long.xlsx",
			wantBase: "long",
			wantExt:  "xlsx",
		},
		{
			name:     "Upper case extension",
			file:     "long.CSV",
			wantBase: "long",
			wantExt:  "csv",
		},
		{
			name:     "Multiple dots",
			file:     "long.2023.csv",
			wantBase: "long.2023",
			wantExt:  "csv",
		},
		{
			name:     "No extension",
			file:     "long",
			wantBase: "long",
			wantExt:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var base, ext string
			router.HandlerFunc(http.MethodGet, "/api/export/:file", func(w http.ResponseWriter, r *http.Request) {
				base, ext = ExtractFileParam(r, "file")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/export/"+tc.file, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.wantBase, base)
			assert.Equal(t, tc.wantExt, ext)
		})
	}
}

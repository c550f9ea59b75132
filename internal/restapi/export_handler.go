package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"dashboard.demografia.org/internal/export"
	"dashboard.demografia.org/internal/utils"
)

// exportHandler serves /api/export/long.{csv,xlsx}: every entity-year with
// all three metrics present, plus urban share and regime.
func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	base, ext := utils.ExtractFileParam(r, "file")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateFileName(base + "." + ext); err != nil {
		fieldErrors["file"] = append(fieldErrors["file"], err.Error())
	}
	format, err := export.ParseFormat(ext)
	if err != nil {
		fieldErrors["file"] = append(fieldErrors["file"], err.Error())
	}
	group, fieldErrors := parseGroupParam(r.URL.Query(), fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if base != "long" {
		api.notFoundHandler(w, r)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, api.Manager.Panel(group)); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="long-%s.%s"`, group, format))
	api.sendBytes(w, format.ContentType(), buf.Bytes())
}

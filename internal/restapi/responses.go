package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"dashboard.demografia.org/internal/models"
)

// sendResponse encodes into a buffer first so an encoding failure can still
// become a 500 instead of a truncated body.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	setJSONResponseType(w)
	_, _ = w.Write(buf.Bytes())
}

func (api *RestAPI) sendBytes(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}

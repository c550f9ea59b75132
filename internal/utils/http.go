package utils

import (
	"net/http"
	"path"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractFileParam retrieves a path parameter from the request context and
// splits it into its base name and lower-cased extension, "long.XLSX"
// giving ("long", "xlsx").
func ExtractFileParam(r *http.Request, paramName string) (string, string) {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	ext := path.Ext(raw)
	return strings.TrimSuffix(raw, ext), strings.ToLower(strings.TrimPrefix(ext, "."))
}

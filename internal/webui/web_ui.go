package webui

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"maragu.dev/gomponents"

	"dashboard.demografia.org/internal/app"
)

// WebUI serves the HTML pages. The charts themselves come from the REST API.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func cardClass(extra ...string) string {
	return strings.Join(append([]string{"card"}, extra...), " ")
}

func mutedClass() string {
	return "muted small"
}

// printer formats numbers the way the dashboard's readers expect them:
// "1.234.567" and "85,3".
var printer = message.NewPrinter(language.Spanish)

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func formatPercent(v float64) string {
	return printer.Sprintf("%.1f %%", v)
}

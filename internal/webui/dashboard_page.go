package webui

import (
	"net/http"
	"strconv"
	"strings"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/models"
)

const pageStyle = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f6f7f9; color: #1f2328; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; }
.card { background: #fff; border: 1px solid #d0d7de; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
.chart img { width: 100%; height: auto; }
.muted { color: #59636e; }
.small { font-size: 0.875em; }
.swatch { display: inline-block; width: 0.8em; height: 0.8em; margin-right: 0.4em; border-radius: 2px; }
.controls { display: flex; gap: 16px; align-items: center; flex-wrap: wrap; }
.controls input[type=range] { flex: 1; min-width: 240px; }
table { border-collapse: collapse; }
td, th { padding: 4px 12px; text-align: left; }
`

// dashboardView is everything the page renders server-side. The sliders
// then re-point the chart images without a page reload.
type dashboardView struct {
	Stats        dashboard.Statistics
	Years        []int
	ScatterYears []int
	Histogram    models.RegimeHistogram
	// IncomeGroups is the income-group scatter for the last scatter year.
	IncomeGroups []dashboard.Point
}

func (webUI *WebUI) dashboardView() dashboardView {
	manager := webUI.Manager
	view := dashboardView{
		Stats:        manager.Statistics(),
		Years:        manager.Years(),
		ScatterYears: manager.ScatterYears(),
	}
	if n := len(view.Years); n > 0 {
		year := view.Years[n-1]
		view.Histogram = models.NewRegimeHistogram(strconv.Itoa(year), manager.Config().Scheme.Version, manager.RegimeCounts(year))
	}
	if n := len(view.ScatterYears); n > 0 {
		view.IncomeGroups = manager.Scatter(view.ScatterYears[n-1], dashboard.GroupIncomeGroups)
	}
	return view
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, dashboardPage(webUI.dashboardView()))
}

// yearLookup is a datastar expression picking years[idx] from an index signal.
// Slider positions are indices because the available years may have gaps.
func yearLookup(years []int, signal string) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return "[" + strings.Join(parts, ",") + "][$" + signal + "]"
}

func lastIndex(years []int) int {
	return max(len(years)-1, 0)
}

func lastYear(years []int) string {
	if len(years) == 0 {
		return ""
	}
	return strconv.Itoa(years[len(years)-1])
}

func dashboardPage(view dashboardView) Node {
	return Doctype(HTML(
		Lang("es"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text("Demografía mundial")),
			Link(Rel("icon"), Href("data:,")),
			StyleEl(Raw(pageStyle)),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(
				data.Signals(map[string]any{
					"yearIdx":    lastIndex(view.Years),
					"scatterIdx": lastIndex(view.ScatterYears),
					"group":      string(dashboard.GroupCountries),
					"metric":     "urban-share",
				}),
				H1(Text("Fertilidad y urbanización")),
				statsCard(view.Stats),
				histogramCard(view),
				scatterCard(view),
				exportCard(),
			),
		),
	))
}

func statsCard(stats dashboard.Statistics) Node {
	return Div(
		Class(cardClass()),
		P(
			Strong(Text(formatCount(stats.Countries)+" países")),
			Text(" · "+formatCount(stats.IncomeGroups)+" grupos de ingreso · "),
			Text(formatCount(stats.Rows)+" filas"),
		),
		If(stats.FirstYear != 0,
			P(Class(mutedClass()), Textf("Años %d a %d. Dispersión desde %d.", stats.FirstYear, stats.LastYear, stats.ScatterFrom)),
		),
		If(len(stats.MissingSeries) > 0,
			P(Class(mutedClass()), Text("Series ausentes: "+strings.Join(stats.MissingSeries, "; "))),
		),
		P(Class(mutedClass()), Text("Fuente: "+stats.Source+" · clasificación v"+stats.SchemeVersion)),
	)
}

func histogramCard(view dashboardView) Node {
	if len(view.Years) == 0 {
		return Div(Class(cardClass()), H2(Text("Regímenes de fertilidad")), P(Text("Sin datos")))
	}

	rows := make([]Node, 0, len(view.Histogram.Counts))
	for _, c := range view.Histogram.Counts {
		rows = append(rows, Tr(
			Td(Span(Class("swatch"), Style("background:"+c.Color)), Text(c.Regime)),
			Td(Text(formatCount(c.Count))),
		))
	}

	year := yearLookup(view.Years, "yearIdx")
	return Div(
		Class(cardClass("chart")),
		H2(Text("Regímenes de fertilidad")),
		Div(
			Class("controls"),
			Label(For("year"), Text("Año")),
			Input(
				ID("year"),
				Type("range"),
				Min("0"),
				Max(strconv.Itoa(lastIndex(view.Years))),
				Step("1"),
				data.Bind("yearIdx"),
			),
			Strong(Attr("data-text", year), Text(lastYear(view.Years))),
		),
		Img(
			Alt("Países por régimen de fertilidad"),
			Src("/charts/regimes.svg?year="+lastYear(view.Years)),
			Attr("data-attr:src", "'/charts/regimes.svg?year=' + "+year),
		),
		Table(
			Class(mutedClass()),
			THead(Tr(Th(Textf("Régimen (%s)", view.Histogram.Year)), Th(Text("Países")))),
			TBody(Group(rows)),
		),
	)
}

func scatterCard(view dashboardView) Node {
	years := view.ScatterYears
	if len(years) == 0 {
		return Div(Class(cardClass()), H2(Text("Fertilidad y población urbana")), P(Text("Sin datos")))
	}

	year := yearLookup(years, "scatterIdx")
	return Div(
		Class(cardClass("chart")),
		H2(Text("Fertilidad y población urbana")),
		Div(
			Class("controls"),
			Label(For("scatter-year"), Text("Año")),
			Input(
				ID("scatter-year"),
				Type("range"),
				Min("0"),
				Max(strconv.Itoa(lastIndex(years))),
				Step("1"),
				data.Bind("scatterIdx"),
			),
			Strong(Attr("data-text", year), Text(lastYear(years))),
			Select(
				data.Bind("group"),
				Option(Value(string(dashboard.GroupCountries)), Text(dashboard.GroupCountries.Title())),
				Option(Value(string(dashboard.GroupIncomeGroups)), Text(dashboard.GroupIncomeGroups.Title())),
			),
			Select(
				data.Bind("metric"),
				Option(Value("urban-share"), Text("Población urbana (%)")),
				Option(Value("urban"), Text("Población urbana")),
			),
		),
		Img(
			Alt("Fertilidad frente a población urbana"),
			Src("/charts/scatter.svg?year="+lastYear(years)),
			Attr("data-attr:src", "'/charts/scatter.svg?year=' + "+year+" + '&group=' + $group + '&metric=' + $metric"),
		),
		P(
			Class(mutedClass()),
			data.Show("$group == 'income-groups'"),
			Text("Grupos de ingreso del Banco Mundial, etiquetados en el gráfico."),
		),
		If(len(view.IncomeGroups) > 0, incomeGroupTable(view.IncomeGroups, lastYear(years))),
	)
}

func incomeGroupTable(points []dashboard.Point, year string) Node {
	rows := make([]Node, 0, len(points))
	for _, p := range points {
		rows = append(rows, Tr(
			Td(Text(p.Entity)),
			Td(Text(printer.Sprintf("%.1f", p.Fertility))),
			Td(Text(formatPercent(p.UrbanShare))),
		))
	}
	return Table(
		Class(mutedClass()),
		THead(Tr(Th(Textf("Grupo de ingreso (%s)", year)), Th(Text("Fertilidad")), Th(Text("Población urbana")))),
		TBody(Group(rows)),
	)
}

func exportCard() Node {
	link := func(ext, label string) Node {
		href := "/api/export/long." + ext
		return A(
			Href(href+"?group="+string(dashboard.GroupCountries)),
			Attr("data-attr:href", "'"+href+"?group=' + $group"),
			Text(label),
		)
	}
	return Div(
		Class(cardClass()),
		H2(Text("Descargas")),
		P(link("xlsx", "Tabla larga (Excel)"), Text(" · "), link("csv", "Tabla larga (CSV)")),
	)
}

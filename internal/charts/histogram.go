package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"dashboard.demografia.org/internal/regime"
)

// RegimeHistogram draws one bar per regime, in regime.Order, for the counts
// of year. Each bar carries its regime's color.
func RegimeHistogram(counts []regime.YearRegimeCount, year string) ([]byte, error) {
	title := fmt.Sprintf("Países por régimen de fertilidad en %s", year)
	if len(counts) == 0 {
		return Placeholder(title)
	}

	totals := make(map[regime.Regime]int, len(regime.Order))
	for _, c := range counts {
		if c.Year == year {
			totals[c.Regime] += c.Count
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Número de países"

	labels := make([]string, len(regime.Order))
	peak := 0
	for i, r := range regime.Order {
		labels[i] = r.String()
		bars, err := plotter.NewBarChart(plotter.Values{float64(totals[r])}, vg.Points(48))
		if err != nil {
			return nil, fmt.Errorf("building %s bar: %w", r, err)
		}
		bars.XMin = float64(i)
		bars.Color = namedColor(r.Color())
		bars.LineStyle.Width = 0
		p.Add(bars)
		peak = max(peak, totals[r])
	}
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = float64(max(peak, 1)) * 1.1
	p.Add(plotter.NewGrid())
	return render(p)
}

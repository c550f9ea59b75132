package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type Point struct {
	Label string
	X, Y  float64
	// Group selects the legend entry and Color the marker fill.
	Group string
	Color string
}

type ScatterOptions struct {
	Title  string
	XLabel string
	YLabel string
	// Zero Min and Max leave the axis scaled to the data.
	XMin, XMax float64
	YMin, YMax float64
	// MarkerSize is the marker diameter in points.
	MarkerSize  float64
	LabelPoints bool
}

// Scatter draws points grouped by Group, one legend entry per group in
// first-seen order.
func Scatter(points []Point, opts ScatterOptions) ([]byte, error) {
	if len(points) == 0 {
		return Placeholder(opts.Title)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var order []string
	byGroup := make(map[string]plotter.XYs)
	colors := make(map[string]string)
	for _, pt := range points {
		if _, ok := byGroup[pt.Group]; !ok {
			order = append(order, pt.Group)
			colors[pt.Group] = pt.Color
		}
		byGroup[pt.Group] = append(byGroup[pt.Group], plotter.XY{X: pt.X, Y: pt.Y})
	}

	radius := vg.Points(max(opts.MarkerSize, 2) / 2)
	for _, group := range order {
		s, err := plotter.NewScatter(byGroup[group])
		if err != nil {
			return nil, fmt.Errorf("building %q markers: %w", group, err)
		}
		s.GlyphStyle.Color = namedColor(colors[group])
		s.GlyphStyle.Radius = radius
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(group, s)
	}

	if opts.LabelPoints {
		xyl := plotter.XYLabels{
			XYs:    make([]plotter.XY, len(points)),
			Labels: make([]string, len(points)),
		}
		for i, pt := range points {
			xyl.XYs[i] = plotter.XY{X: pt.X, Y: pt.Y}
			xyl.Labels[i] = pt.Label
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, fmt.Errorf("building labels: %w", err)
		}
		p.Add(labels)
	}

	if opts.XMin != 0 || opts.XMax != 0 {
		p.X.Min, p.X.Max = opts.XMin, opts.XMax
	}
	if opts.YMin != 0 || opts.YMax != 0 {
		p.Y.Min, p.Y.Max = opts.YMin, opts.YMax
	}
	return render(p)
}

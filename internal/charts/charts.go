// Package charts renders dashboard tables as SVG images with gonum/plot.
package charts

import (
	"bytes"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const ContentType = "image/svg+xml"

const (
	width  = 8 * vg.Inch
	height = 5 * vg.Inch
)

// NoDataText is drawn on charts whose input is empty.
const NoDataText = "Sin datos"

// namedColor resolves CSS color names such as "red"; unknown names are gray.
func namedColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Gray
}

func render(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Placeholder is an empty chart carrying only a title and NoDataText.
func Placeholder(title string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.5, Y: 0.5}},
		Labels: []string{NoDataText},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return render(p)
}

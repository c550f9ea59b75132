// Package regime classifies fertility rates into ordered regimes and builds
// the dense year by regime tallies used by the histogram.
package regime

import "slices"

// Regime is a fertility regime label as shown on the dashboard.
type Regime string

const (
	BelowReplacement Regime = "Bajo el equilibrio"
	Replacement      Regime = "Equilibrio"
	Doubling         Regime = "Duplicación"
	Tripling         Regime = "Triplicación"
)

// Order is the display order, lowest regime first.
var Order = []Regime{BelowReplacement, Replacement, Doubling, Tripling}

var colors = map[Regime]string{
	BelowReplacement: "red",
	Replacement:      "orange",
	Doubling:         "blue",
	Tripling:         "green",
}

// Color returns the fixed display color of r, or "gray" for unknown labels.
func (r Regime) Color() string {
	if c, ok := colors[r]; ok {
		return c
	}
	return "gray"
}

// Rank is the position of r in Order, or -1.
func (r Regime) Rank() int {
	return slices.Index(Order, r)
}

func (r Regime) Valid() bool {
	return r.Rank() >= 0
}

func (r Regime) String() string {
	return string(r)
}

package regime

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Band assigns Regime to every value >= Lower up to the next band's Lower.
type Band struct {
	Lower  float64
	Regime Regime
}

// Scheme is a versioned threshold table. Bands are ordered by Lower and the
// first band starts at -Inf, so every float maps to exactly one band.
type Scheme struct {
	Version string
	Bands   []Band
}

// Canonical is the current classification. Values below 2.1, negatives
// included, are below replacement.
var Canonical = Scheme{
	Version: "2",
	Bands: []Band{
		{Lower: math.Inf(-1), Regime: BelowReplacement},
		{Lower: 2.1, Regime: Replacement},
		{Lower: 4, Regime: Doubling},
		{Lower: 6.3, Regime: Tripling},
	},
}

var schemes = map[string]Scheme{
	Canonical.Version: Canonical,
}

var ErrUnknownScheme = errors.New("unknown classification scheme")

func SchemeByVersion(version string) (Scheme, error) {
	s, ok := schemes[version]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, version)
	}
	return s, nil
}

// Versions lists the registered scheme versions, sorted.
func Versions() []string {
	out := make([]string, 0, len(schemes))
	for v := range schemes {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Classify maps x with the Canonical scheme.
func Classify(x float64) Regime {
	return Canonical.Classify(x)
}

// Classify returns the regime of the highest band whose lower bound is <= x.
// NaN compares false against every bound and lands in the lowest band.
func (s Scheme) Classify(x float64) Regime {
	for i := len(s.Bands) - 1; i > 0; i-- {
		if x >= s.Bands[i].Lower {
			return s.Bands[i].Regime
		}
	}
	if len(s.Bands) == 0 {
		return ""
	}
	return s.Bands[0].Regime
}

// Regimes returns the scheme's regimes from lowest to highest band.
func (s Scheme) Regimes() []Regime {
	out := make([]Regime, len(s.Bands))
	for i, b := range s.Bands {
		out[i] = b.Regime
	}
	return out
}

// Validate checks that the bands partition the real line: the first band is
// open below, bounds strictly increase, and each known regime appears once.
func (s Scheme) Validate() error {
	if s.Version == "" {
		return errors.New("scheme has no version")
	}
	if len(s.Bands) == 0 {
		return fmt.Errorf("scheme %s has no bands", s.Version)
	}
	if !math.IsInf(s.Bands[0].Lower, -1) {
		return fmt.Errorf("scheme %s: first band must start at -Inf, got %v", s.Version, s.Bands[0].Lower)
	}

	seen := make(map[Regime]bool, len(s.Bands))
	for i, b := range s.Bands {
		if !b.Regime.Valid() {
			return fmt.Errorf("scheme %s: band %d has unknown regime %q", s.Version, i, b.Regime)
		}
		if seen[b.Regime] {
			return fmt.Errorf("scheme %s: regime %q appears twice", s.Version, b.Regime)
		}
		seen[b.Regime] = true

		if math.IsNaN(b.Lower) {
			return fmt.Errorf("scheme %s: band %d has NaN bound", s.Version, i)
		}
		if i > 0 && b.Lower <= s.Bands[i-1].Lower {
			return fmt.Errorf("scheme %s: band %d bound %v does not exceed %v", s.Version, i, b.Lower, s.Bands[i-1].Lower)
		}
	}
	return nil
}

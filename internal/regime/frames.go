package regime

import (
	"cmp"
	"slices"
	"strconv"

	"dashboard.demografia.org/internal/dataset"
)

// YearRegimeCount is the number of entities in Regime for Year.
type YearRegimeCount struct {
	Year   string `json:"year"`
	Regime Regime `json:"regime"`
	Count  int    `json:"count"`
}

// Count classifies every record with s and tallies (year, regime) pairs.
// Only pairs with at least one record are returned.
func (s Scheme) Count(records []dataset.SeriesRecord) []YearRegimeCount {
	type key struct {
		year   int
		regime Regime
	}
	tally := make(map[key]int)
	var order []key
	for _, r := range records {
		k := key{year: r.Year, regime: s.Classify(r.Value)}
		if _, ok := tally[k]; !ok {
			order = append(order, k)
		}
		tally[k]++
	}

	out := make([]YearRegimeCount, len(order))
	for i, k := range order {
		out[i] = YearRegimeCount{Year: strconv.Itoa(k.year), Regime: k.regime, Count: tally[k]}
	}
	return out
}

// Count tallies with the Canonical scheme.
func Count(records []dataset.SeriesRecord) []YearRegimeCount {
	return Canonical.Count(records)
}

// Complete expands counts to the full cross product of years and regimes.
// The year set is allYears plus any year already present in counts. Missing
// pairs get a zero count and duplicate pairs are summed. Rows are ordered by
// numeric year, then by the position of the regime in regimes.
func Complete(counts []YearRegimeCount, allYears []string, regimes []Regime) []YearRegimeCount {
	type key struct {
		year   string
		regime Regime
	}
	tally := make(map[key]int, len(counts))
	years := make(map[string]struct{}, len(allYears))
	for _, y := range allYears {
		years[y] = struct{}{}
	}
	for _, c := range counts {
		tally[key{c.Year, c.Regime}] += c.Count
		years[c.Year] = struct{}{}
	}

	sortedYears := make([]string, 0, len(years))
	for y := range years {
		sortedYears = append(sortedYears, y)
	}
	slices.SortFunc(sortedYears, compareYears)

	out := make([]YearRegimeCount, 0, len(sortedYears)*len(regimes))
	for _, y := range sortedYears {
		for _, r := range regimes {
			out = append(out, YearRegimeCount{Year: y, Regime: r, Count: tally[key{y, r}]})
		}
	}
	return out
}

// compareYears orders numerically when both labels parse, otherwise
// lexically, with numeric labels first.
func compareYears(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Or(cmp.Compare(ai, bi), cmp.Compare(a, b))
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// YearLabels formats years for Complete.
func YearLabels(years []int) []string {
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

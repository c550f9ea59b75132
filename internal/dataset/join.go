package dataset

import (
	"cmp"
	"math"
	"slices"
)

type Key struct {
	Entity string
	Year   int
}

// JoinedRecord carries one value per joined series, in argument order.
type JoinedRecord struct {
	Entity string
	Year   int
	Values []float64
}

// Join inner-joins the series on (entity, year). A key survives only when
// every input has it; within one input the first record for a key wins.
// Output is sorted by year, then entity.
func Join(series ...[]SeriesRecord) []JoinedRecord {
	if len(series) == 0 {
		return nil
	}

	indexes := make([]map[Key]float64, len(series))
	for i, records := range series {
		idx := make(map[Key]float64, len(records))
		for _, r := range records {
			k := Key{Entity: r.Entity, Year: r.Year}
			if _, dup := idx[k]; !dup {
				idx[k] = r.Value
			}
		}
		indexes[i] = idx
	}

	var out []JoinedRecord
	for k, first := range indexes[0] {
		values := make([]float64, len(series))
		values[0] = first
		present := true
		for i := 1; i < len(indexes); i++ {
			v, ok := indexes[i][k]
			if !ok {
				present = false
				break
			}
			values[i] = v
		}
		if present {
			out = append(out, JoinedRecord{Entity: k.Entity, Year: k.Year, Values: values})
		}
	}

	slices.SortFunc(out, func(a, b JoinedRecord) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Entity, b.Entity))
	})
	return out
}

// UrbanShare is 100*urban/total. It reports false when total is zero or the
// result is not finite.
func UrbanShare(urban, total float64) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	pct := 100 * urban / total
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

// WithUrbanShare appends the urban share to every joined record, computed
// from the values at urbanIdx and totalIdx. Records where the share cannot
// be computed are dropped. The inputs are not modified.
func WithUrbanShare(joined []JoinedRecord, urbanIdx, totalIdx int) []JoinedRecord {
	out := make([]JoinedRecord, 0, len(joined))
	for _, r := range joined {
		if urbanIdx >= len(r.Values) || totalIdx >= len(r.Values) {
			continue
		}
		pct, ok := UrbanShare(r.Values[urbanIdx], r.Values[totalIdx])
		if !ok {
			continue
		}
		values := make([]float64, len(r.Values), len(r.Values)+1)
		copy(values, r.Values)
		out = append(out, JoinedRecord{Entity: r.Entity, Year: r.Year, Values: append(values, pct)})
	}
	return out
}

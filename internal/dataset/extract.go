package dataset

import "slices"

// AggregateEntities names the income-group pseudo-entities that share the
// entity column with real countries. Every extraction that separates the two
// goes through this set.
var AggregateEntities = []string{
	"Upper middle income",
	"Middle income",
	"Lower middle income",
	"Low income",
	"High income",
}

type filterMode int

const (
	filterAll filterMode = iota
	filterExclude
	filterInclude
)

// EntityFilter selects rows by entity name.
type EntityFilter struct {
	mode filterMode
	set  map[string]struct{}
}

func AllEntities() EntityFilter {
	return EntityFilter{mode: filterAll}
}

func ExcludeEntities(names []string) EntityFilter {
	return EntityFilter{mode: filterExclude, set: toSet(names)}
}

func IncludeOnly(names []string) EntityFilter {
	return EntityFilter{mode: filterInclude, set: toSet(names)}
}

// Countries keeps every entity outside AggregateEntities.
func Countries() EntityFilter {
	return ExcludeEntities(AggregateEntities)
}

// IncomeGroups keeps only the AggregateEntities rows.
func IncomeGroups() EntityFilter {
	return IncludeOnly(AggregateEntities)
}

func (f EntityFilter) Match(entity string) bool {
	_, in := f.set[entity]
	switch f.mode {
	case filterExclude:
		return !in
	case filterInclude:
		return in
	default:
		return true
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// ProjectedRow holds the raw cells of one entity for the projected years,
// aligned with Projection.Years.
type ProjectedRow struct {
	Entity string
	Cells  []string
}

type Projection struct {
	Series string
	Years  []int
	Rows   []ProjectedRow
}

func (p Projection) Empty() bool {
	return len(p.Rows) == 0
}

// Extract keeps the rows whose series name equals series exactly and whose
// entity passes filter, restricted to the given years. An unknown series
// yields an empty projection.
func Extract(t *Table, series string, filter EntityFilter, years []int) Projection {
	p := Projection{Series: series, Years: slices.Clone(years)}
	for _, row := range t.rows {
		if row[t.seriesCol] != series || !filter.Match(row[t.entityCol]) {
			continue
		}
		cells := make([]string, len(years))
		for i, y := range years {
			cells[i] = t.cell(row, y)
		}
		p.Rows = append(p.Rows, ProjectedRow{Entity: row[t.entityCol], Cells: cells})
	}
	return p
}

package dataset

import (
	"math"
	"strconv"
	"strings"
)

type EntityValue struct {
	Entity string
	Value  float64
}

// SeriesRecord is one (entity, year) observation of a single series.
type SeriesRecord struct {
	Entity string
	Year   int
	Value  float64
}

// ParseValue reads a numeric cell. Blank cells, the World Bank ".." marker,
// and anything that does not parse to a finite number report false.
func ParseValue(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == ".." {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CrossSection returns the parsed values of series for a single year.
func CrossSection(t *Table, series string, filter EntityFilter, year int) []EntityValue {
	p := Extract(t, series, filter, []int{year})
	out := make([]EntityValue, 0, len(p.Rows))
	for _, row := range p.Rows {
		if v, ok := ParseValue(row.Cells[0]); ok {
			out = append(out, EntityValue{Entity: row.Entity, Value: v})
		}
	}
	return out
}

// ToLong melts the projection of series into one record per present cell.
func ToLong(t *Table, series string, filter EntityFilter, years []int) []SeriesRecord {
	return Extract(t, series, filter, years).Long()
}

func (p Projection) Long() []SeriesRecord {
	var out []SeriesRecord
	for _, row := range p.Rows {
		for i, year := range p.Years {
			v, ok := ParseValue(row.Cells[i])
			if !ok {
				continue
			}
			out = append(out, SeriesRecord{Entity: row.Entity, Year: year, Value: v})
		}
	}
	return out
}

// YearRecords lifts a cross-section into long form for a fixed year.
func YearRecords(values []EntityValue, year int) []SeriesRecord {
	out := make([]SeriesRecord, len(values))
	for i, v := range values {
		out[i] = SeriesRecord{Entity: v.Entity, Year: year, Value: v.Value}
	}
	return out
}

package dataset

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultEntityColumn = "Country Name"
	DefaultSeriesColumn = "Series Name"
)

// Table is the wide source table: one row per (entity, series), one column
// per year plus the identifying columns. It is read-only once built.
type Table struct {
	columns   []string
	rows      [][]string
	entityCol int
	seriesCol int
	yearCols  map[int]int
	source    string
	format    Format
}

// NewTable normalizes the column labels and indexes the identifying and year
// columns. Rows shorter than the header are padded with empty cells; longer
// rows are truncated. Rows without a series name are dropped.
func NewTable(columns []string, rows [][]string, opts LoadOptions) (*Table, error) {
	opts = opts.withDefaults()
	if len(columns) == 0 {
		return nil, errors.New("table has no header")
	}

	t := &Table{
		columns:   NormalizeColumns(columns),
		entityCol: -1,
		seriesCol: -1,
		yearCols:  make(map[int]int),
	}
	if len(t.columns) > 0 {
		t.columns[0] = strings.TrimPrefix(t.columns[0], "\ufeff")
	}

	for i, label := range t.columns {
		switch {
		case label == opts.EntityColumn && t.entityCol < 0:
			t.entityCol = i
		case label == opts.SeriesColumn && t.seriesCol < 0:
			t.seriesCol = i
		case isYearLabel(label):
			year, _ := strconv.Atoi(label)
			if _, dup := t.yearCols[year]; !dup {
				t.yearCols[year] = i
			}
		}
	}
	if t.entityCol < 0 {
		return nil, fmt.Errorf("missing %q column", opts.EntityColumn)
	}
	if t.seriesCol < 0 {
		return nil, fmt.Errorf("missing %q column", opts.SeriesColumn)
	}

	t.rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		row = fitRow(row, len(t.columns))
		row[t.entityCol] = strings.TrimSpace(row[t.entityCol])
		row[t.seriesCol] = strings.TrimSpace(row[t.seriesCol])
		if row[t.seriesCol] == "" {
			continue
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// NormalizeColumnLabel rewrites "1990 [YR1990]" to "1990". Labels without the
// bracketed year annotation pass through unchanged.
func NormalizeColumnLabel(label string) string {
	if !strings.Contains(label, " [YR") {
		return label
	}
	head, _, _ := strings.Cut(label, " ")
	return head
}

func NormalizeColumns(labels []string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = NormalizeColumnLabel(strings.TrimSpace(label))
	}
	return out
}

func isYearLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return false
		}
	}
	// Guard against absurd digit runs that would overflow int.
	return len(label) <= 9
}

func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Source() string {
	return t.source
}

func (t *Table) Format() Format {
	return t.format
}

// YearColumns returns the sorted years whose column label is made only of
// digits, keeping years >= minYear (0 disables the bound) and not excluded.
func (t *Table) YearColumns(minYear int, exclude []int) []int {
	years := make([]int, 0, len(t.yearCols))
	for year := range t.yearCols {
		if year < minYear || slices.Contains(exclude, year) {
			continue
		}
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// Entities returns the distinct entity names in first-seen order.
func (t *Table) Entities() []string {
	return t.distinct(t.entityCol)
}

// SeriesNames returns the distinct series names in first-seen order.
func (t *Table) SeriesNames() []string {
	return t.distinct(t.seriesCol)
}

func (t *Table) distinct(col int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.rows {
		v := row[col]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (t *Table) cell(row []string, year int) string {
	col, ok := t.yearCols[year]
	if !ok {
		return ""
	}
	return row[col]
}

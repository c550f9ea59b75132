package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumnLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"2000 [YR2000]", "2000"},
		{"1974 [YR1974]", "1974"},
		{"2000", "2000"},
		{"Country Name", "Country Name"},
		{"Series Code", "Series Code"},
		{"Notes [see below]", "Notes [see below]"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeColumnLabel(tt.label))
		})
	}
}

func TestNormalizeColumnsIsIdempotent(t *testing.T) {
	labels := []string{"Country Name", "Country Code", "Series Name", "1999 [YR1999]", " 2000 [YR2000] ", "2001"}

	once := NormalizeColumns(labels)
	twice := NormalizeColumns(once)

	assert.Equal(t, []string{"Country Name", "Country Code", "Series Name", "1999", "2000", "2001"}, once)
	assert.Equal(t, once, twice)
}

func TestYearColumns(t *testing.T) {
	table := mustTable(t, worldBankCSV)

	t.Run("all digit labels sorted", func(t *testing.T) {
		assert.Equal(t, []int{2000, 2001, 2023}, table.YearColumns(0, nil))
	})

	t.Run("min year bound is inclusive", func(t *testing.T) {
		assert.Equal(t, []int{2001, 2023}, table.YearColumns(2001, nil))
	})

	t.Run("excluded years are dropped", func(t *testing.T) {
		assert.Equal(t, []int{2000, 2001}, table.YearColumns(0, []int{2023}))
	})

	t.Run("identifying columns are never years", func(t *testing.T) {
		for _, y := range table.YearColumns(0, nil) {
			assert.Greater(t, y, 1000)
		}
	})
}

func TestTableIndexes(t *testing.T) {
	table := mustTable(t, worldBankCSV)

	assert.Equal(t, 8, table.Len(), "footer lines have no series and are dropped")
	assert.Equal(t, []string{"CountryA", "CountryB", "High income", "Low income"}, table.Entities())
	assert.Equal(t, []string{fertility, urban, total}, table.SeriesNames())
	assert.Equal(t, FormatCSV, table.Format())
}

func TestNewTable(t *testing.T) {
	t.Run("ragged rows are padded", func(t *testing.T) {
		table, err := NewTable(
			[]string{"Country Name", "Series Name", "2000", "2001"},
			[][]string{{"A", urban, "5"}},
			LoadOptions{},
		)
		assert.NoError(t, err)
		values := CrossSection(table, urban, AllEntities(), 2001)
		assert.Empty(t, values)
		assert.Len(t, CrossSection(table, urban, AllEntities(), 2000), 1)
	})

	t.Run("custom column names", func(t *testing.T) {
		table, err := NewTable(
			[]string{"Economy", "Indicator", "2000"},
			[][]string{{"A", urban, "5"}},
			LoadOptions{EntityColumn: "Economy", SeriesColumn: "Indicator"},
		)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A"}, table.Entities())
	})

	t.Run("missing series column", func(t *testing.T) {
		_, err := NewTable([]string{"Country Name", "2000"}, nil, LoadOptions{})
		assert.ErrorContains(t, err, "Series Name")
	})

	t.Run("empty header", func(t *testing.T) {
		_, err := NewTable(nil, nil, LoadOptions{})
		assert.Error(t, err)
	})
}

package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntParam(t *testing.T) {
	params := url.Values{"year": {"2000"}, "bad": {"20x0"}}

	n, ok, fieldErrors := ParseIntParam(params, "year", nil)
	assert.Equal(t, 2000, n)
	assert.True(t, ok)
	assert.Empty(t, fieldErrors)

	_, ok, fieldErrors = ParseIntParam(params, "missing", fieldErrors)
	assert.False(t, ok)
	assert.Empty(t, fieldErrors)

	_, ok, fieldErrors = ParseIntParam(params, "bad", fieldErrors)
	assert.False(t, ok)
	assert.Equal(t, []string{`Invalid field value for field "bad".`}, fieldErrors["bad"])
}

func TestParseYearParam(t *testing.T) {
	available := []int{1974, 2000, 2023}

	t.Run("missing year defaults to the latest", func(t *testing.T) {
		year, fieldErrors := ParseYearParam(url.Values{}, "year", available, nil)
		assert.Equal(t, 2023, year)
		assert.Empty(t, fieldErrors)
	})

	t.Run("available year", func(t *testing.T) {
		year, fieldErrors := ParseYearParam(url.Values{"year": {"1974"}}, "year", available, nil)
		assert.Equal(t, 1974, year)
		assert.Empty(t, fieldErrors)
	})

	t.Run("year outside the dataset", func(t *testing.T) {
		_, fieldErrors := ParseYearParam(url.Values{"year": {"1960"}}, "year", available, nil)
		assert.Len(t, fieldErrors["year"], 1)
	})

	t.Run("not a number", func(t *testing.T) {
		_, fieldErrors := ParseYearParam(url.Values{"year": {"latest"}}, "year", available, nil)
		assert.Equal(t, []string{`Invalid field value for field "year".`}, fieldErrors["year"])
	})

	t.Run("no years at all", func(t *testing.T) {
		_, fieldErrors := ParseYearParam(url.Values{}, "year", nil, nil)
		assert.Equal(t, []string{"no years available"}, fieldErrors["year"])
	})
}

func TestParseChoiceParam(t *testing.T) {
	choices := []string{"countries", "income-groups"}

	got, fieldErrors := ParseChoiceParam(url.Values{}, "group", choices, nil)
	assert.Equal(t, "countries", got)
	assert.Empty(t, fieldErrors)

	got, fieldErrors = ParseChoiceParam(url.Values{"group": {"income-groups"}}, "group", choices, fieldErrors)
	assert.Equal(t, "income-groups", got)
	assert.Empty(t, fieldErrors)

	_, fieldErrors = ParseChoiceParam(url.Values{"group": {"regions"}}, "group", choices, fieldErrors)
	assert.Equal(t, []string{`Invalid field value for field "group", want one of: countries, income-groups.`}, fieldErrors["group"])
}

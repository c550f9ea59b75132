package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fertility = "Fertility rate, total (births per woman)"
	urban     = "Urban population"
	total     = "Population, total"
)

// worldBankCSV mimics a World Bank DataBank export, footer included.
const worldBankCSV = `Country Name,Country Code,Series Name,Series Code,2000 [YR2000],2001 [YR2001],2023 [YR2023]
CountryA,CA,"Fertility rate, total (births per woman)",SP.DYN.TFRT.IN,1.5,n/a,1.4
CountryA,CA,Urban population,SP.URB.TOTL,500,510,..
CountryA,CA,"Population, total",SP.POP.TOTL,1000,1010,1020
CountryB,CB,"Fertility rate, total (births per woman)",SP.DYN.TFRT.IN,4.2,4.1,
CountryB,CB,Urban population,SP.URB.TOTL,300,310,320
CountryB,CB,"Population, total",SP.POP.TOTL,0,600,610
High income,HIC,"Fertility rate, total (births per woman)",SP.DYN.TFRT.IN,1.7,1.6,1.5
Low income,LIC,"Fertility rate, total (births per woman)",SP.DYN.TFRT.IN,6.5,6.4,6.3

Data from database: World Development Indicators
Last Updated: 12/16/2024
`

func mustTable(t *testing.T, content string) *Table {
	t.Helper()
	table, err := LoadReader(strings.NewReader(content), FormatCSV, LoadOptions{})
	require.NoError(t, err)
	return table
}

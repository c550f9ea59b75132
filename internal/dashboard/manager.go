// Package dashboard composes the loading, reshaping and classification steps
// into the tables each chart needs. Every method is a pure function of its
// arguments and the immutable table, so a Manager is safe for concurrent use.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dataset"
	"dashboard.demografia.org/internal/regime"
)

type Manager struct {
	table        *dataset.Table
	config       Config
	countries    dataset.EntityFilter
	incomeGroups dataset.EntityFilter
}

func NewManager(table *dataset.Table, config Config) (*Manager, error) {
	if table == nil {
		return nil, errors.New("dashboard: nil table")
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("dashboard config: %w", err)
	}
	countries, incomeGroups := entityFilters(config.Aggregates)
	return &Manager{
		table:        table,
		config:       config,
		countries:    countries,
		incomeGroups: incomeGroups,
	}, nil
}

// entityFilters splits entities on aggregates, using the World Bank filters
// unless the dataset names its own aggregate set.
func entityFilters(aggregates []string) (countries, incomeGroups dataset.EntityFilter) {
	if len(aggregates) == 0 || slices.Equal(aggregates, dataset.AggregateEntities) {
		return dataset.Countries(), dataset.IncomeGroups()
	}
	return dataset.ExcludeEntities(aggregates), dataset.IncludeOnly(aggregates)
}

// InitManager loads the table at path and builds a Manager for it.
func InitManager(path string, d appconf.Dataset, logger *slog.Logger) (*Manager, error) {
	config, err := ConfigFromDataset(d)
	if err != nil {
		return nil, err
	}
	table, err := dataset.LoadWithOptions(path, dataset.LoadOptions{
		EntityColumn: d.EntityColumn,
		SeriesColumn: d.SeriesColumn,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}
	return NewManager(table, config)
}

func (manager *Manager) Table() *dataset.Table {
	return manager.table
}

func (manager *Manager) Config() Config {
	return manager.config
}

func (manager *Manager) filter(group Group) dataset.EntityFilter {
	if group == GroupIncomeGroups {
		return manager.incomeGroups
	}
	return manager.countries
}

// Years is the histogram year range.
func (manager *Manager) Years() []int {
	return manager.table.YearColumns(0, manager.config.ExcludeYears)
}

// ScatterYears is the scatter year range, bounded below by MinScatterYear.
func (manager *Manager) ScatterYears() []int {
	return manager.table.YearColumns(manager.config.MinScatterYear, manager.config.ExcludeYears)
}

// HasYear reports whether year is on the histogram range.
func (manager *Manager) HasYear(year int) bool {
	return slices.Contains(manager.Years(), year)
}

func (manager *Manager) HasScatterYear(year int) bool {
	return slices.Contains(manager.ScatterYears(), year)
}

// RegimeCounts classifies every country's fertility for year and returns one
// row per regime, zero counts included.
func (manager *Manager) RegimeCounts(year int) []regime.YearRegimeCount {
	values := dataset.CrossSection(manager.table, manager.config.Fertility, manager.countries, year)
	counts := manager.config.Scheme.Count(dataset.YearRecords(values, year))
	return regime.Complete(counts, []string{strconv.Itoa(year)}, manager.config.Scheme.Regimes())
}

// RegimeFrames is RegimeCounts for every histogram year, as one dense table.
func (manager *Manager) RegimeFrames() []regime.YearRegimeCount {
	years := manager.Years()
	long := dataset.ToLong(manager.table, manager.config.Fertility, manager.countries, years)
	counts := manager.config.Scheme.Count(long)
	return regime.Complete(counts, regime.YearLabels(years), manager.config.Scheme.Regimes())
}

// Point is one entity in one year with every metric present.
type Point struct {
	Entity          string        `json:"entity"`
	Year            int           `json:"year"`
	Fertility       float64       `json:"fertility"`
	UrbanPopulation float64       `json:"urbanPopulation"`
	TotalPopulation float64       `json:"totalPopulation"`
	UrbanShare      float64       `json:"urbanShare"`
	Regime          regime.Regime `json:"regime"`
}

// Scatter joins fertility, urban and total population for year. Entities
// missing any of them, or with zero total population, are left out.
func (manager *Manager) Scatter(year int, group Group) []Point {
	filter := manager.filter(group)
	cross := func(series string) []dataset.SeriesRecord {
		return dataset.YearRecords(dataset.CrossSection(manager.table, series, filter, year), year)
	}
	return manager.points(dataset.Join(
		cross(manager.config.Fertility),
		cross(manager.config.UrbanPopulation),
		cross(manager.config.TotalPopulation),
	))
}

// UrbanScatter joins only fertility and urban population for year, so
// entities without a total population still plot on the absolute urban axis.
// TotalPopulation and UrbanShare are left at zero.
func (manager *Manager) UrbanScatter(year int, group Group) []Point {
	filter := manager.filter(group)
	cross := func(series string) []dataset.SeriesRecord {
		return dataset.YearRecords(dataset.CrossSection(manager.table, series, filter, year), year)
	}
	joined := dataset.Join(cross(manager.config.Fertility), cross(manager.config.UrbanPopulation))
	out := make([]Point, len(joined))
	for i, r := range joined {
		out[i] = Point{
			Entity:          r.Entity,
			Year:            r.Year,
			Fertility:       r.Values[0],
			UrbanPopulation: r.Values[1],
			Regime:          manager.config.Scheme.Classify(r.Values[0]),
		}
	}
	return out
}

// Panel is Scatter across every histogram year.
func (manager *Manager) Panel(group Group) []Point {
	years := manager.Years()
	filter := manager.filter(group)
	long := func(series string) []dataset.SeriesRecord {
		return dataset.ToLong(manager.table, series, filter, years)
	}
	return manager.points(dataset.Join(
		long(manager.config.Fertility),
		long(manager.config.UrbanPopulation),
		long(manager.config.TotalPopulation),
	))
}

func (manager *Manager) points(joined []dataset.JoinedRecord) []Point {
	shared := dataset.WithUrbanShare(joined, 1, 2)
	out := make([]Point, len(shared))
	for i, r := range shared {
		out[i] = Point{
			Entity:          r.Entity,
			Year:            r.Year,
			Fertility:       r.Values[0],
			UrbanPopulation: r.Values[1],
			TotalPopulation: r.Values[2],
			UrbanShare:      r.Values[3],
			Regime:          manager.config.Scheme.Classify(r.Values[0]),
		}
	}
	return out
}

// Long returns series in long form over the histogram years.
func (manager *Manager) Long(series string, group Group) []dataset.SeriesRecord {
	return dataset.ToLong(manager.table, series, manager.filter(group), manager.Years())
}

// SeriesNames lists the three series the charts read, in display order.
func (manager *Manager) SeriesNames() []string {
	return []string{manager.config.Fertility, manager.config.UrbanPopulation, manager.config.TotalPopulation}
}

type Statistics struct {
	Source        string   `json:"source"`
	Format        string   `json:"format"`
	Rows          int      `json:"rows"`
	Countries     int      `json:"countries"`
	IncomeGroups  int      `json:"incomeGroups"`
	Series        []string `json:"series"`
	MissingSeries []string `json:"missingSeries,omitempty"`
	FirstYear     int      `json:"firstYear"`
	LastYear      int      `json:"lastYear"`
	ScatterFrom   int      `json:"scatterFrom"`
	ExcludedYears []int    `json:"excludedYears,omitempty"`
	SchemeVersion string   `json:"schemeVersion"`
}

// Statistics summarizes the loaded table. MissingSeries names the configured
// series with no rows, which would leave their charts empty.
func (manager *Manager) Statistics() Statistics {
	stats := Statistics{
		Source:        manager.table.Source(),
		Format:        string(manager.table.Format()),
		Rows:          manager.table.Len(),
		Series:        manager.table.SeriesNames(),
		ExcludedYears: manager.config.ExcludeYears,
		SchemeVersion: manager.config.Scheme.Version,
	}
	for _, entity := range manager.table.Entities() {
		if manager.incomeGroups.Match(entity) {
			stats.IncomeGroups++
		} else {
			stats.Countries++
		}
	}
	for _, name := range manager.SeriesNames() {
		if !slices.Contains(stats.Series, name) {
			stats.MissingSeries = append(stats.MissingSeries, name)
		}
	}
	if years := manager.Years(); len(years) > 0 {
		stats.FirstYear, stats.LastYear = years[0], years[len(years)-1]
	}
	if years := manager.ScatterYears(); len(years) > 0 {
		stats.ScatterFrom = years[0]
	}
	return stats
}

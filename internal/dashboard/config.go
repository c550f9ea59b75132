package dashboard

import (
	"fmt"

	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dataset"
	"dashboard.demografia.org/internal/regime"
)

// Config is the resolved dataset contract the Manager computes against.
type Config struct {
	Fertility       string
	UrbanPopulation string
	TotalPopulation string
	// Aggregates separates income groups from countries.
	Aggregates     []string
	MinScatterYear int
	ExcludeYears   []int
	Scheme         regime.Scheme
}

func DefaultConfig() Config {
	cfg, _ := ConfigFromDataset(appconf.DefaultDataset())
	return cfg
}

// ConfigFromDataset resolves the scheme version and copies the series names.
func ConfigFromDataset(d appconf.Dataset) (Config, error) {
	scheme, err := regime.SchemeByVersion(d.SchemeVersion)
	if err != nil {
		return Config{}, err
	}
	aggregates := d.AggregateEntities
	if len(aggregates) == 0 {
		aggregates = dataset.AggregateEntities
	}
	return Config{
		Fertility:       d.Series.Fertility,
		UrbanPopulation: d.Series.UrbanPopulation,
		TotalPopulation: d.Series.TotalPopulation,
		Aggregates:      aggregates,
		MinScatterYear:  d.MinScatterYear,
		ExcludeYears:    d.ExcludeYears,
		Scheme:          scheme,
	}, nil
}

func (c Config) validate() error {
	if c.Fertility == "" || c.UrbanPopulation == "" || c.TotalPopulation == "" {
		return fmt.Errorf("series names must be set")
	}
	return c.Scheme.Validate()
}

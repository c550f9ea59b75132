package appconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"dashboard.demografia.org/internal/dataset"
)

// SeriesNames are the exact "Series Name" values the charts read.
type SeriesNames struct {
	Fertility       string `yaml:"fertility"`
	UrbanPopulation string `yaml:"urban_population"`
	TotalPopulation string `yaml:"total_population"`
}

// Dataset describes the contract between the dashboard and the input table.
// It is read from an optional YAML file; fields left out keep their defaults.
type Dataset struct {
	EntityColumn      string      `yaml:"entity_column"`
	SeriesColumn      string      `yaml:"series_column"`
	Series            SeriesNames `yaml:"series"`
	AggregateEntities []string    `yaml:"aggregate_entities"`
	MinScatterYear    int         `yaml:"min_scatter_year"`
	ExcludeYears      []int       `yaml:"exclude_years"`
	SchemeVersion     string      `yaml:"scheme_version"`
}

func DefaultDataset() Dataset {
	return Dataset{
		EntityColumn: "Country Name",
		SeriesColumn: "Series Name",
		Series: SeriesNames{
			Fertility:       "Fertility rate, total (births per woman)",
			UrbanPopulation: "Urban population",
			TotalPopulation: "Population, total",
		},
		AggregateEntities: slices.Clone(dataset.AggregateEntities),
		MinScatterYear: 1974,
		SchemeVersion:  "2",
	}
}

// LoadDataset reads the YAML file at path over DefaultDataset. An empty path
// returns the defaults.
func LoadDataset(path string) (Dataset, error) {
	if path == "" {
		return DefaultDataset(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset config: %w", err)
	}
	return ParseDataset(b)
}

func ParseDataset(b []byte) (Dataset, error) {
	cfg := DefaultDataset()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("parsing dataset config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Dataset{}, err
	}
	return cfg, nil
}

func (d Dataset) Validate() error {
	if d.EntityColumn == "" || d.SeriesColumn == "" {
		return errors.New("entity_column and series_column must not be empty")
	}
	if d.Series.Fertility == "" || d.Series.UrbanPopulation == "" || d.Series.TotalPopulation == "" {
		return errors.New("all three series names must be set")
	}
	if d.MinScatterYear < 0 {
		return fmt.Errorf("min_scatter_year must be non-negative, got %d", d.MinScatterYear)
	}
	return nil
}

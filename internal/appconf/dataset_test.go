package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.demografia.org/internal/dataset"
)

func TestDefaultDatasetAggregates(t *testing.T) {
	cfg := DefaultDataset()
	cfg.AggregateEntities[0] = "Changed"
	assert.NotEqual(t, "Changed", dataset.AggregateEntities[0], "defaults hold a copy of the aggregate set")
	assert.Equal(t, dataset.AggregateEntities, DefaultDataset().AggregateEntities)
}

func TestLoadDataset(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadDataset("")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataset(), cfg)
		assert.Equal(t, dataset.AggregateEntities, cfg.AggregateEntities)
		assert.Empty(t, cfg.ExcludeYears)
	})

	t.Run("file overrides only the fields it sets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yaml")
		content := "exclude_years: [2023]\nmin_scatter_year: 1990\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadDataset(path)
		require.NoError(t, err)
		assert.Equal(t, []int{2023}, cfg.ExcludeYears)
		assert.Equal(t, 1990, cfg.MinScatterYear)
		assert.Equal(t, "Fertility rate, total (births per woman)", cfg.Series.Fertility)
		assert.Equal(t, "Country Name", cfg.EntityColumn)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseDataset(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseDataset(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultDataset(), cfg)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := ParseDataset([]byte("exclude_year: [2023]\n"))
		assert.Error(t, err)
	})

	t.Run("blank series name is rejected", func(t *testing.T) {
		_, err := ParseDataset([]byte("series:\n  fertility: \"\"\n"))
		assert.Error(t, err)
	})

	t.Run("nested series override", func(t *testing.T) {
		cfg, err := ParseDataset([]byte("series:\n  urban_population: Urban population (total)\n"))
		require.NoError(t, err)
		assert.Equal(t, "Urban population (total)", cfg.Series.UrbanPopulation)
		assert.Equal(t, "Population, total", cfg.Series.TotalPopulation)
	})
}

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Production, EnvFlagToEnvironment("Production"))
	assert.Equal(t, Development, EnvFlagToEnvironment("staging"))
	assert.Equal(t, "production", Production.String())
}

func TestConfigValidateFormatAndPort(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestDecode_OverlaysDefaults(t *testing.T) {
	raw := []byte(`
max_generations: 50
population:
  max_size: 8
`)
	cfg, err := config.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.MaxGenerations)
	require.Equal(t, 8, cfg.Population.MaxSize)
	// Untouched fields keep their Default() values.
	require.Equal(t, 300, cfg.MaxTimeSeconds)
	require.Equal(t, config.AlgorithmGreedy, cfg.Population.Algorithm)
}

func TestDecode_MalformedYAMLFails(t *testing.T) {
	_, err := config.Decode([]byte("max_generations: [this is not a scalar"))
	require.Error(t, err)
}

func TestDecode_ValidationAggregatesErrors(t *testing.T) {
	raw := []byte(`
max_generations: 0
max_time_seconds: -1
population:
  max_size: 0
  algorithm: nonsense
min_variation:
  sample: -5
`)
	_, err := config.Decode(raw)
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "BAD_MAX_GENERATIONS")
	require.Contains(t, msg, "BAD_MAX_TIME")
	require.Contains(t, msg, "BAD_POPULATION_SIZE")
	require.Contains(t, msg, "BAD_POPULATION_ALGORITHM")
	require.Contains(t, msg, "BAD_MIN_VARIATION")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/to/config.yaml")
	require.Error(t, err)
}

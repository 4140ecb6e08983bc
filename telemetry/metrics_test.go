package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/telemetry"
)

func TestMetrics_TracksOnCadenceOnly(t *testing.T) {
	m := telemetry.NewMetrics(config.MetricsConfig{Enabled: true, TrackPopulationEvery: 2})

	m.Track(1, 4, []float64{1, 2})
	require.Empty(t, m.Samples)

	m.Track(2, 4, []float64{1, 2})
	require.Len(t, m.Samples, 1)
	require.Equal(t, 2, m.Samples[0].Generation)
	require.Equal(t, 4, m.Samples[0].PopulationSize)
	require.Equal(t, []float64{1, 2}, m.Samples[0].BestValues)
}

func TestMetrics_DisabledNeverTracks(t *testing.T) {
	m := telemetry.NewMetrics(config.MetricsConfig{Enabled: false, TrackPopulationEvery: 1})
	m.Track(1, 1, []float64{0})
	require.Empty(t, m.Samples)
}

func TestMetrics_CopiesBestValuesDefensively(t *testing.T) {
	m := telemetry.NewMetrics(config.MetricsConfig{Enabled: true, TrackPopulationEvery: 1})
	values := []float64{1, 2, 3}
	m.Track(1, 1, values)

	values[0] = 999
	require.Equal(t, 1.0, m.Samples[0].BestValues[0])
}

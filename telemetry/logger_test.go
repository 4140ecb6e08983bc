package telemetry_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/telemetry"
)

func TestLogger_RespectsCadenceAndEnabled(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	log := telemetry.NewLogger(base, config.LoggingConfig{Enabled: true, LogBestEvery: 2, LogPopulationEvery: 3})

	log.LogBest(1, []float64{1, 2, 3})
	require.Empty(t, hook.Entries)

	log.LogBest(2, []float64{1, 2, 3})
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "evolution: new best", hook.LastEntry().Message)

	hook.Reset()
	log.LogPopulation(3, 4)
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "evolution: population snapshot", hook.LastEntry().Message)
}

func TestLogger_DisabledSuppressesEverything(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	log := telemetry.NewLogger(base, config.LoggingConfig{Enabled: false, LogBestEvery: 1, LogPopulationEvery: 1})

	log.LogBest(1, []float64{1})
	log.LogPopulation(1, 1)
	log.LogUnassigned(1, []string{"j1"})
	require.Empty(t, hook.Entries)
}

func TestLogger_UnassignedAlwaysLogsRegardlessOfCadence(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	log := telemetry.NewLogger(base, config.LoggingConfig{Enabled: true, LogBestEvery: 100, LogPopulationEvery: 100})

	log.LogUnassigned(7, []string{"j1", "j2"})
	require.Len(t, hook.Entries, 1)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	log.LogUnassigned(7, nil)
	require.Empty(t, hook.Entries)
}

func TestLogger_WithFieldsPreservesCadence(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	log := telemetry.NewLogger(base, config.LoggingConfig{Enabled: true, LogBestEvery: 5, LogPopulationEvery: 5})
	scoped := log.WithFields(logrus.Fields{"route": "r1"})

	scoped.LogBest(5, []float64{1})
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "r1", hook.LastEntry().Data["route"])
}

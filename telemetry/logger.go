// Package telemetry wraps structured logging and generation-cadence
// metrics sampling around the evolution loop (§6 "telemetry.logging",
// "telemetry.metrics"), on top of logrus the way inference-sim wires it
// into its own simulation loop.
package telemetry

import (
	"github.com/sirupsen/logrus"

	"github.com/routeforge/vrp/config"
)

// Logger gates structured log lines behind the configured cadence so a
// long run does not emit one entry per generation by default.
type Logger struct {
	entry   *logrus.Entry
	cfg     config.LoggingConfig
}

// NewLogger wraps base (nil selects logrus.StandardLogger()) with cfg's
// enabled flag and cadence.
func NewLogger(base *logrus.Logger, cfg config.LoggingConfig) *Logger {
	if base == nil {
		base = logrus.StandardLogger()
	}

	return &Logger{entry: logrus.NewEntry(base), cfg: cfg}
}

// WithFields returns a Logger carrying additional structured fields,
// reusing the same cadence configuration.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields), cfg: l.cfg}
}

// shouldLog reports whether generation is a cadence boundary for every N.
// N <= 0 means "never" for that cadence.
func shouldLog(generation, every int) bool {
	return every > 0 && generation%every == 0
}

// LogBest emits an info-level line with best's objective values if
// generation lands on the configured log_best_every boundary.
func (l *Logger) LogBest(generation int, values []float64) {
	if !l.cfg.Enabled || !shouldLog(generation, l.cfg.LogBestEvery) {
		return
	}
	l.entry.WithFields(logrus.Fields{
		"generation": generation,
		"objective":  values,
	}).Info("evolution: new best")
}

// LogPopulation emits an info-level line summarizing population size if
// generation lands on the configured log_population_every boundary.
func (l *Logger) LogPopulation(generation, size int) {
	if !l.cfg.Enabled || !shouldLog(generation, l.cfg.LogPopulationEvery) {
		return
	}
	l.entry.WithFields(logrus.Fields{
		"generation": generation,
		"population": size,
	}).Info("evolution: population snapshot")
}

// LogUnassigned emits a warn-level line when a generation ends with
// unassigned jobs remaining, regardless of cadence — failures are always
// worth surfacing.
func (l *Logger) LogUnassigned(generation int, jobIDs []string) {
	if !l.cfg.Enabled || len(jobIDs) == 0 {
		return
	}
	l.entry.WithFields(logrus.Fields{
		"generation": generation,
		"unassigned": jobIDs,
	}).Warn("evolution: jobs unassigned")
}

package telemetry

import (
	"github.com/routeforge/vrp/config"
)

// Sample is one population snapshot taken at a track_population_every
// boundary (§6 "telemetry.metrics").
type Sample struct {
	Generation     int
	PopulationSize int
	BestValues     []float64
}

// Metrics accumulates population Samples in memory at the configured
// cadence. It is deliberately a plain in-process recorder rather than a
// wire-format exporter (statsd/Prometheus/etc. all need a running sink to
// push to, which is explicitly out of scope — §1 "telemetry formatting"):
// Samples is the hand-off point a caller forwards to whatever real
// backend it has.
type Metrics struct {
	cfg     config.MetricsConfig
	Samples []Sample
}

// NewMetrics returns a Metrics recorder governed by cfg.
func NewMetrics(cfg config.MetricsConfig) *Metrics {
	return &Metrics{cfg: cfg}
}

// Track appends a Sample if generation lands on the configured
// track_population_every boundary and metrics are enabled.
func (m *Metrics) Track(generation, populationSize int, bestValues []float64) {
	if !m.cfg.Enabled || !shouldLog(generation, m.cfg.TrackPopulationEvery) {
		return
	}
	values := append([]float64(nil), bestValues...)
	m.Samples = append(m.Samples, Sample{Generation: generation, PopulationSize: populationSize, BestValues: values})
}

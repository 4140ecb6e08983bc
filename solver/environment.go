// Package solver wires model, constraint, insertion, ruin, and evolution
// together into the single Solve entry point: it builds the initial
// SolutionContext, runs feasibility.Check as an eager pre-flight, then
// drives evolution.Run and translates the result into the §6 output
// shape, grounded on the teacher's own validate-then-dispatch shape
// (tsp/solve.go before its deletion — see DESIGN.md).
package solver

import (
	"math/rand"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/telemetry"
)

// Environment bundles the run's non-Problem, non-Config inputs (§5): the
// master PRNG every per-generation stream derives from, the structured
// logger, and the cancellation Quota.
type Environment struct {
	RNG    *rand.Rand
	Logger *telemetry.Logger
	Metrics *telemetry.Metrics
	Quota  *Quota
}

// NewEnvironment builds an Environment from seed and cfg's telemetry
// configuration.
func NewEnvironment(seed int64, cfg *config.Config) *Environment {
	return &Environment{
		RNG:     rand.New(rand.NewSource(seed)),
		Logger:  telemetry.NewLogger(nil, cfg.Telemetry.Logging),
		Metrics: telemetry.NewMetrics(cfg.Telemetry.Metrics),
		Quota:   NewQuota(cfg.MaxTimeSeconds),
	}
}

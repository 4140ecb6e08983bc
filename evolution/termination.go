package evolution

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Termination reports whether the evolution loop should stop (§4.5
// "Termination"). Implementations may be combined with Any for a
// composite OR, matching §4.5's "first satisfied criterion wins".
type Termination interface {
	Done(pop Population, generation int, started time.Time) bool
}

// MaxGeneration stops once generation reaches Limit.
type MaxGeneration struct {
	Limit int
}

// Done implements Termination.
func (m MaxGeneration) Done(pop Population, generation int, started time.Time) bool {
	return generation >= m.Limit
}

// MaxTime stops once the wall-clock run time reaches Limit.
type MaxTime struct {
	Limit time.Duration
}

// Done implements Termination.
func (m MaxTime) Done(pop Population, generation int, started time.Time) bool {
	return time.Since(started) >= m.Limit
}

// VariationCoefficient stops once the population's cost values have
// converged: stddev/mean across pop.All()'s last Values entry (the fitness
// tier) falls at or below Threshold, computed via gonum/stat (§4.5
// "VariationCoefficient", §12 domain-stack wiring). The sample is the
// current population members, not a window of the most recently accepted
// costs. Requires at least MinSamples individuals to avoid triggering on a
// nearly-empty population.
type VariationCoefficient struct {
	Threshold  float64
	MinSamples int
}

// Done implements Termination.
func (v VariationCoefficient) Done(pop Population, generation int, started time.Time) bool {
	all := pop.All()
	min := v.MinSamples
	if min < 2 {
		min = 2
	}
	if len(all) < min {
		return false
	}
	values := make([]float64, len(all))
	for i, ind := range all {
		if len(ind.Values) > 0 {
			values[i] = ind.Values[len(ind.Values)-1]
		}
	}
	mean := stat.Mean(values, nil)
	if mean == 0 {
		return false
	}
	sd := stat.StdDev(values, nil)

	return sd/mean <= v.Threshold
}

// GoalSatisfied stops once the population's best Individuum meets every
// thresholded tier of Goal (§4.5 "GoalSatisfied").
type GoalSatisfied struct {
	Satisfied func(values []float64) bool
}

// Done implements Termination.
func (g GoalSatisfied) Done(pop Population, generation int, started time.Time) bool {
	best := pop.Best()
	if best == nil {
		return false
	}

	return g.Satisfied(best.Values)
}

// Any combines several Termination criteria with OR semantics (§4.5
// "composite OR").
type Any []Termination

// Done implements Termination.
func (a Any) Done(pop Population, generation int, started time.Time) bool {
	for _, t := range a {
		if t.Done(pop, generation, started) {
			return true
		}
	}

	return false
}

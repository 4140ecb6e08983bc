package evolution

import (
	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/state"
)

// Objective computes an Individuum's ObjectiveValues vector: a fixed
// three-tier hierarchy — unassigned count, non-empty route count, pipeline
// fitness (cost plus soft-constraint penalties) — compared in that order
// (§4.5 "hierarchical objective", §6 "Objectives specification").
//
// Tiers map 1:1 onto model.Goal.Tiers by position: a Problem's Goal names
// and thresholds the same three metrics this Objective produces.
type Objective struct {
	Pipeline *constraint.Pipeline
}

// NewObjective binds pipeline as the fitness source shared by every
// individual evaluated this run.
func NewObjective(pipeline *constraint.Pipeline) *Objective {
	return &Objective{Pipeline: pipeline}
}

// Evaluate returns sc's tier values: [unassigned, routes, fitness].
func (o *Objective) Evaluate(sc *state.SolutionContext) []float64 {
	return []float64{
		float64(len(sc.Unassigned)),
		float64(sc.RouteCount()),
		o.Pipeline.Fitness(sc),
	}
}

// Less reports whether a dominates b under lexicographic tier comparison
// (§4.5 "tiers are compared in declaration order, most significant
// first"): the first tier where they differ decides.
func Less(a, b []float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

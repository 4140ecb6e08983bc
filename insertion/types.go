// Package insertion implements the insertion engine (§4.3): given a
// SolutionContext with a non-empty Required pool, it places every
// insertable job at the cheapest feasible (route, position) the
// constraint pipeline allows, using a pluggable JobSelector to pick which
// jobs to consider each round and a pluggable JobMapReducer to collapse
// the per-job candidate set into the one insertion actually applied.
package insertion

import (
	"math/rand"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Candidate is one feasible (route, position) found for a job, with the
// pipeline's summed local cost estimate (§4.2 "the engine sums local
// estimates to rank candidate positions").
type Candidate struct {
	Job        model.Job
	RouteIndex int
	Position   int
	Cost       float64
}

// less implements the §4.3 numerical comparator: "less is better; NaN
// treated as greater-or-equal", tie-broken by (route index, activity
// index) ascending (§14 Open Question decision).
func less(a, b Candidate) bool {
	an, bn := isNaN(a.Cost), isNaN(b.Cost)
	if an || bn {
		if an && bn {
			return tieBreak(a, b)
		}

		return !an
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return tieBreak(a, b)
}

func tieBreak(a, b Candidate) bool {
	if a.RouteIndex != b.RouteIndex {
		return a.RouteIndex < b.RouteIndex
	}

	return a.Position < b.Position
}

func isNaN(f float64) bool { return f != f }

// JobSelector yields a finite sequence of candidate jobs to attempt this
// round, drawn from sc.Required (§4.3 step 1).
type JobSelector interface {
	Select(sc *state.SolutionContext, rng *rand.Rand) []model.Job
}

// JobMapReducer collapses the per-job candidate sets gathered this round
// into the single insertion the engine applies next (§4.3 step 3).
// perJob maps a job's id to every feasible Candidate found for it,
// already sorted ascending by Cost (index 0 is that job's best position).
// Reduce returns the chosen Candidate, or ok=false if nothing in perJob is
// usable (the engine then marks every job in the round unassigned, drops
// them from Required and goes on with the next round).
type JobMapReducer interface {
	Reduce(perJob map[string][]Candidate, rng *rand.Rand) (Candidate, bool)
}

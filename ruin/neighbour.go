package ruin

import (
	"math/rand"

	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/state"
)

// NeighbourRemoval picks a random seed job among those currently placed
// and removes it together with its K nearest spatial neighbours, via the
// problem's JobIndex (§4.4 "Neighbour Removal").
type NeighbourRemoval struct {
	K int
}

// Ruin implements Operator.
func (n NeighbourRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	jobs := placedJobs(sc)
	if len(jobs) == 0 {
		return
	}
	seed := jobs[randx.Intn(rng, len(jobs))]

	limit := budget(sc, rc)
	removed := 0
	if removeJob(sc, rc, seed) {
		removed++
	}
	if rc.Problem.JobIndex == nil {
		return
	}

	neighbours := rc.Problem.JobIndex.Neighbors(rc.Profile, seed, n.K)
	for _, id := range neighbours {
		if removed >= limit {
			return
		}
		if removeJob(sc, rc, id) {
			removed++
		}
	}
}

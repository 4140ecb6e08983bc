package ruin

import (
	"math/rand"

	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// RandomJobRemoval repeatedly draws a uniformly random (route, job) pair
// and removes it unless locked (§4.4 "Random-Job Removal").
type RandomJobRemoval struct{}

// Ruin implements Operator.
func (RandomJobRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	limit := budget(sc, rc)
	removed := 0
	attempts := 0
	maxAttempts := limit * 8
	if maxAttempts < 16 {
		maxAttempts = 16
	}

	for removed < limit && attempts < maxAttempts {
		attempts++
		jobs := placedJobs(sc)
		if len(jobs) == 0 {
			return
		}
		pick := jobs[randx.Intn(rng, len(jobs))]
		if removeJob(sc, rc, pick) {
			removed++
		}
	}
}

// RandomRouteRemoval picks U[RMin, RMax] routes at random and returns
// every non-locked job in them to Required (§4.4 "Random-Route Removal").
type RandomRouteRemoval struct {
	RMin, RMax int
}

// Ruin implements Operator.
func (r RandomRouteRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	if len(sc.Routes) == 0 {
		return
	}
	count := randx.UniformInt(rng, r.RMin, r.RMax)
	if count > len(sc.Routes) {
		count = len(sc.Routes)
	}
	if count < 1 {
		count = 1
	}

	perm := randx.PermRange(len(sc.Routes), rng)
	for i := 0; i < count; i++ {
		routeIndex := perm[i]
		tour := sc.Routes[routeIndex].Route.Tour
		var jobIDs []string
		for pos := 0; pos < tour.Len(); pos++ {
			if act := tour.At(pos); act.Kind == solution.KindJob {
				jobIDs = append(jobIDs, act.JobID())
			}
		}
		for _, id := range jobIDs {
			removeJob(sc, rc, id)
		}
	}
}

// placedJobs returns every non-locked job id currently placed in a route,
// in deterministic (route, position) order.
func placedJobs(sc *state.SolutionContext) []string {
	var out []string
	for _, routeCtx := range sc.Routes {
		tour := routeCtx.Route.Tour
		for pos := 0; pos < tour.Len(); pos++ {
			if act := tour.At(pos); act.Kind == solution.KindJob && !sc.IsLocked(act.JobID()) {
				out = append(out, act.JobID())
			}
		}
	}

	return out
}

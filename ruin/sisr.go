package ruin

import (
	"math"
	"math/rand"

	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// AdjustedStringRemoval implements SISR (§4.4): selects a random seed job,
// then removes contiguous "strings" of jobs from every route whose tour
// contains one of the seed's spatial neighbours, with string lengths
// drawn so the expected total removed tracks Cavg.
type AdjustedStringRemoval struct {
	// LMax bounds a single string's length.
	LMax int
	// Cavg is the desired average customer count removed per call.
	Cavg float64
	// Alpha is the preservation ratio (reserved for a future partial
	// preservation pass within a removed string; currently every job in a
	// selected string is removed outright).
	Alpha float64
}

// Ruin implements Operator.
func (s AdjustedStringRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	meanCardinality := meanTourCardinality(sc)
	lsMax := s.LMax
	if rounded := int(math.Round(meanCardinality)); rounded < lsMax {
		lsMax = rounded
	}
	if lsMax < 1 {
		lsMax = 1
	}

	ksMax := 4*s.Cavg/(1+float64(lsMax)) - 1
	if ksMax < 1 {
		ksMax = 1
	}
	ks := 1 + randx.Intn(rng, int(ksMax))
	if ks < 1 {
		ks = 1
	}

	jobs := placedJobs(sc)
	if len(jobs) == 0 {
		return
	}
	seed := jobs[randx.Intn(rng, len(jobs))]

	candidateRoutes := routesNearSeed(sc, rc, seed, ks)
	limit := budget(sc, rc)
	removed := 0

	for _, routeIndex := range candidateRoutes {
		if removed >= limit {
			break
		}
		tour := sc.Routes[routeIndex].Route.Tour
		jobCount := tour.JobCount()
		if jobCount == 0 {
			continue
		}
		bound := lsMax
		if jobCount < bound {
			bound = jobCount
		}
		lt := 1 + randx.Intn(rng, bound)

		removed += removeString(sc, rc, routeIndex, lt, limit-removed)
	}
}

func meanTourCardinality(sc *state.SolutionContext) float64 {
	if len(sc.Routes) == 0 {
		return 0
	}
	total := 0
	for _, routeCtx := range sc.Routes {
		total += routeCtx.Route.Tour.JobCount()
	}

	return float64(total) / float64(len(sc.Routes))
}

// routesNearSeed returns up to ks distinct route indices whose tour
// contains seed or one of its spatial neighbours (§4.4 "iterates over
// routes containing jobs in the seed's neighbourhood").
func routesNearSeed(sc *state.SolutionContext, rc *Context, seed string, ks int) []int {
	wanted := map[string]struct{}{seed: {}}
	if rc.Problem.JobIndex != nil {
		for _, id := range rc.Problem.JobIndex.Neighbors(rc.Profile, seed, 0) {
			wanted[id] = struct{}{}
		}
	}

	seen := make(map[int]struct{})
	var routes []int
	for routeIndex, routeCtx := range sc.Routes {
		tour := routeCtx.Route.Tour
		for pos := 0; pos < tour.Len(); pos++ {
			act := tour.At(pos)
			if act.Kind != solution.KindJob {
				continue
			}
			if _, ok := wanted[act.JobID()]; ok {
				if _, dup := seen[routeIndex]; !dup {
					seen[routeIndex] = struct{}{}
					routes = append(routes, routeIndex)
				}

				break
			}
		}
		if len(routes) >= ks {
			break
		}
	}

	return routes
}

// removeString removes one contiguous run of up to length jobs starting
// from the first job activity in routeIndex's tour. Job ids are snapshot
// before any removal so later removals' position shifts cannot corrupt
// the run (§4.4 "removing contiguous strings... from each").
func removeString(sc *state.SolutionContext, rc *Context, routeIndex, length, cap int) int {
	tour := sc.Routes[routeIndex].Route.Tour
	var jobIDs []string
	for pos := 0; pos < tour.Len() && len(jobIDs) < length; pos++ {
		if act := tour.At(pos); act.Kind == solution.KindJob {
			jobIDs = append(jobIDs, act.JobID())
		}
	}

	removed := 0
	for _, id := range jobIDs {
		if removed >= cap {
			break
		}
		if removeJob(sc, rc, id) {
			removed++
		}
	}

	return removed
}

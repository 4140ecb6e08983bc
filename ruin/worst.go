package ruin

import (
	"math"
	"math/rand"
	"sort"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// saving is one job's removal saving within its route: the detour cost
// its presence adds relative to skipping straight from its predecessor to
// its successor (§4.4 "Worst-Job Removal").
type saving struct {
	routeIndex int
	position   int
	jobID      string
	value      float64
}

// WorstJobRemoval removes the jobs whose presence costs the most detour,
// biased toward (but not limited to) the single worst offender (§4.4,
// §14 "Worst-job savings are sorted descending").
type WorstJobRemoval struct {
	// WorstSkip bounds how far into the sorted-descending savings list the
	// removed job is drawn from: 0-based index U[0, WorstSkip] (clamped to
	// the last entry), so a draw of 0 removes the largest saving.
	WorstSkip int
	// NeighbourRange bounds how many of the chosen job's route-adjacent
	// neighbours are additionally removed: U[0, NeighbourRange].
	NeighbourRange int
}

// Ruin implements Operator.
func (w WorstJobRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	limit := budget(sc, rc)
	if limit <= 0 {
		return
	}

	removed := 0
	for removed < limit {
		savings := collectSavings(sc, rc)
		savings = filterUnlocked(sc, savings)
		if len(savings) == 0 {
			return
		}

		sort.SliceStable(savings, func(i, j int) bool { return savings[i].value > savings[j].value })

		skip := randx.UniformInt(rng, 0, w.WorstSkip)
		idx := skip
		if idx >= len(savings) {
			idx = len(savings) - 1
		}
		target := savings[idx]

		if !removeJob(sc, rc, target.jobID) {
			continue
		}
		removed++

		extra := randx.UniformInt(rng, 0, w.NeighbourRange)
		for i := 0; i < extra && removed < limit; i++ {
			neighbourID, ok := routeNeighbour(sc, target.routeIndex, target.position)
			if !ok {
				break
			}
			if removeJob(sc, rc, neighbourID) {
				removed++
			}
		}
	}
}

// collectSavings computes, for every route in parallel-equivalent
// sequential form (§5 "worst-job ruin ... fans out a data-parallel map
// over routes" — the fan-out itself has no observable effect beyond
// wall-clock since savings are independent per route, so this sequential
// form is equivalent), the saving of every job currently placed.
func collectSavings(sc *state.SolutionContext, rc *Context) []saving {
	var out []saving
	for routeIndex, routeCtx := range sc.Routes {
		tour := routeCtx.Route.Tour
		for i := 0; i < tour.Len(); i++ {
			act := tour.At(i)
			if act.Kind != solution.KindJob {
				continue
			}
			prev := tour.At(i - 1)
			next := tour.At(i + 1)
			out = append(out, saving{
				routeIndex: routeIndex,
				position:   i,
				jobID:      act.JobID(),
				value:      detour(rc, prev, act, next),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].routeIndex != out[j].routeIndex {
			return out[i].routeIndex < out[j].routeIndex
		}

		return out[i].position < out[j].position
	})

	return out
}

func detour(rc *Context, prev, cur, next *solution.Activity) float64 {
	prevLoc, prevOK := actLoc(prev)
	curLoc, curOK := actLoc(cur)
	nextLoc, nextOK := actLoc(next)
	if !curOK {
		return 0
	}

	var before, after, skip float64
	if prevOK {
		before = rc.Problem.TransportCost.Distance(rc.Profile, prevLoc, curLoc)
	}
	if nextOK {
		after = rc.Problem.TransportCost.Distance(rc.Profile, curLoc, nextLoc)
	}
	if prevOK && nextOK {
		skip = rc.Problem.TransportCost.Distance(rc.Profile, prevLoc, nextLoc)
	}
	d := before + after - skip
	if math.IsInf(d, 0) {
		return 0
	}

	return d
}

func actLoc(a *solution.Activity) (model.Location, bool) {
	if a == nil || a.Place.Location == nil {
		return 0, false
	}

	return *a.Place.Location, true
}

func filterUnlocked(sc *state.SolutionContext, savings []saving) []saving {
	out := savings[:0]
	for _, s := range savings {
		if !sc.IsLocked(s.jobID) {
			out = append(out, s)
		}
	}

	return out
}

// routeNeighbour returns the job id of the activity adjacent to position
// in its route (preferring the successor, falling back to the
// predecessor), or ok=false if neither is a job activity.
func routeNeighbour(sc *state.SolutionContext, routeIndex, position int) (string, bool) {
	tour := sc.Routes[routeIndex].Route.Tour
	if next := tour.At(position + 1); next != nil && next.Kind == solution.KindJob {
		return next.JobID(), true
	}
	if prev := tour.At(position - 1); prev != nil && prev.Kind == solution.KindJob {
		return prev.JobID(), true
	}

	return "", false
}

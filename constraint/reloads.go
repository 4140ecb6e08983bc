package constraint

import (
	"strconv"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// GenerateReloadJobs synthesizes one optional Single job per declared
// Reload across every actor's shift (same pattern as GenerateBreakJobs):
// the insertion engine places a job tagged DimenJobType=="reload" as a
// solution.KindReload activity rather than solution.KindJob, so it
// partitions the tour's capacity intervals (§4.1 GLOSSARY "Reload
// interval").
func GenerateReloadJobs(fleet *model.Fleet) ([]model.Job, []model.Lock) {
	var jobs []model.Job
	var locks []model.Lock
	for _, v := range fleet.Vehicles {
		for shiftIdx, shift := range v.Shifts {
			for reloadIdx, rl := range shift.Reloads {
				id := v.ID + "#reload#" + strconv.Itoa(shiftIdx) + "#" + strconv.Itoa(reloadIdx)
				attrs := model.NewDimens()
				attrs[model.DimenJobID] = id
				attrs[model.DimenJobType] = "reload"
				attrs[model.DimenVehicleID] = v.ID
				attrs[model.DimenShiftIndex] = shiftIdx
				jobs = append(jobs, &model.Single{ID: id, Places: []model.Place{rl.Place}, Attrs: attrs})
				locks = append(locks, model.Lock{
					VehicleID: v.ID,
					ShiftIdx:  shiftIdx,
					Order:     model.LockOrderAny,
					Position:  model.LockPositionAny,
					JobIDs:    []string{id},
				})
			}
		}
	}

	return jobs, locks
}

// Reloads allows tours to reset capacity at reload activities; trivial
// reloads (first or last non-terminal activity — i.e. ones that partition
// no actual demand on one side) are removed in accept_solution_state
// (§4.2 "Reloads").
type Reloads struct{}

// NewReloads returns the Reloads feature.
func NewReloads() Feature {
	r := &Reloads{}

	return Feature{Name: "reloads", State: r}
}

// AcceptInsertion implements StateFeature (no-op: pruning happens at
// AcceptSolutionState, once the whole generation's placements are known).
func (r *Reloads) AcceptInsertion(sc *state.SolutionContext, routeIndex int, job model.Job) {
}

// AcceptRouteState implements StateFeature (no-op: Reloads only acts at
// the solution level, where it can safely mutate tour length).
func (r *Reloads) AcceptRouteState(rc *state.RouteContext) {}

// AcceptSolutionState implements StateFeature: prunes trivial reload
// activities from every route's tour.
func (r *Reloads) AcceptSolutionState(sc *state.SolutionContext) {
	for _, rc := range sc.Routes {
		pruneTrivialReloads(rc, sc)
	}
}

func pruneTrivialReloads(rc *state.RouteContext, sc *state.SolutionContext) {
	tour := rc.Route.Tour
	for {
		n := tour.Len()
		if n < 3 {
			return
		}
		firstNonTerminal := 1
		lastNonTerminal := n - 1
		if tour.At(n-1).IsTerminal() {
			lastNonTerminal = n - 2
		}
		if lastNonTerminal < firstNonTerminal {
			return
		}

		if act := tour.At(firstNonTerminal); act.Kind == solution.KindReload {
			removeAndIgnore(tour, sc, firstNonTerminal)
			continue
		}
		if act := tour.At(lastNonTerminal); act.Kind == solution.KindReload {
			removeAndIgnore(tour, sc, lastNonTerminal)
			continue
		}

		return
	}
}

func removeAndIgnore(tour *solution.Tour, sc *state.SolutionContext, idx int) {
	act := tour.RemoveAt(idx)
	if act.Job == nil {
		return
	}
	sc.Ignored = append(sc.Ignored, act.Job)
}

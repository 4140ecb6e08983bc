package constraint

import (
	"strconv"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// DimenBreakPolicy is the custom Dimens key carrying a break job's
// model.BreakPolicy (§4.2 "Breaks").
const DimenBreakPolicy = "break_policy"

// GenerateBreakJobs synthesizes one optional Single job per declared
// Break across every actor's shift, so the generic insertion/ruin
// machinery can place (or skip) them like any other job (§4.2 "Breaks
// treats break jobs as optional, conditionally required"). Each job is
// tagged with the owning vehicle/shift so Locks can bind it exclusively
// to that actor, and carries DimenBreakPolicy for the Breaks feature's
// transition rule.
func GenerateBreakJobs(fleet *model.Fleet) ([]model.Job, []model.Lock) {
	var jobs []model.Job
	var locks []model.Lock
	for _, v := range fleet.Vehicles {
		for shiftIdx, shift := range v.Shifts {
			for breakIdx, brk := range shift.Breaks {
				id := v.ID + "#break#" + strconv.Itoa(shiftIdx) + "#" + strconv.Itoa(breakIdx)
				attrs := model.NewDimens()
				attrs[model.DimenJobID] = id
				attrs[model.DimenJobType] = "break"
				attrs[model.DimenVehicleID] = v.ID
				attrs[model.DimenShiftIndex] = shiftIdx
				attrs[DimenBreakPolicy] = brk.Policy
				jobs = append(jobs, &model.Single{ID: id, Places: []model.Place{brk.Place}, Attrs: attrs})
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

// Breaks implements the conditional-transition rule that moves a break
// job from required to ignored once its owning route exists and the
// break no longer satisfies its policy (§4.2).
type Breaks struct{}

// NewBreaks returns the Breaks feature.
func NewBreaks() Feature {
	b := &Breaks{}

	return Feature{Name: "breaks", Transition: b.transition}
}

func (b *Breaks) transition(sc *state.SolutionContext) []IgnoreTransition {
	var out []IgnoreTransition
	for _, job := range sc.Required {
		jobType, _ := job.Dimens().GetString(model.DimenJobType)
		if jobType != "break" {
			continue
		}
		vehicleID, _ := job.Dimens().GetString(model.DimenVehicleID)
		rc := findRouteByVehicle(sc, vehicleID)
		if rc == nil {
			continue
		}
		policyVal, _ := job.Dimens()[DimenBreakPolicy].(model.BreakPolicy)
		single, ok := job.(*model.Single)
		if !ok || len(single.Places) == 0 {
			continue
		}
		if !breakFeasible(rc, single.Places[0], policyVal) {
			out = append(out, IgnoreTransition{JobID: job.JobID(), Reason: "break policy unsatisfiable"})
		}
	}

	return out
}

func findRouteByVehicle(sc *state.SolutionContext, vehicleID string) *state.RouteContext {
	for _, rc := range sc.Routes {
		if rc.Route.Actor.VehicleID == vehicleID {
			return rc
		}
	}

	return nil
}

func breakFeasible(rc *state.RouteContext, place model.Place, policy model.BreakPolicy) bool {
	tour := rc.Route.Tour
	if tour.Len() == 0 {
		return true
	}
	first := tour.At(0)
	last := tour.At(tour.Len() - 1)
	window, ok := place.Resolve(first.Schedule.Departure)
	if !ok {
		return true
	}

	switch policy {
	case model.SkipIfNoIntersection:
		return window.End >= first.Schedule.Arrival && window.Start <= last.Schedule.Departure
	case model.SkipIfArrivalBeforeEnd:
		return last.Schedule.Arrival > window.End
	default:
		return true
	}
}

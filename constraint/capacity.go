package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Capacity maintains current/max-past/max-future capacity per reload
// interval and rejects insertion whose demand would exceed vehicle
// capacity at any point within the interval containing the insertion
// (§4.2 "Capacity"). See state.demandDelta / state.intervalHeadLoad for
// the static-delivery simplification this feature relies on (documented
// in DESIGN.md).
type Capacity struct{}

// NewCapacity returns the Capacity feature.
func NewCapacity() Feature {
	c := &Capacity{}

	return Feature{Name: "capacity", Constraint: c}
}

// totalDemand sums the demand vector across every task of job (a Single
// has one task; a Multi's tasks are summed, mirroring model.Multi's own
// TotalDemand but expressed generically over the Job interface).
func totalDemand(job model.Job) []int64 {
	var total []int64
	for _, t := range job.Tasks() {
		d := t.Attrs.Demand()
		if d == nil {
			continue
		}
		if total == nil {
			total = make([]int64, len(d))
		}
		for i, v := range d {
			if i < len(total) {
				total[i] += v
			}
		}
	}

	return total
}

// Evaluate implements Constraint.
func (c *Capacity) Evaluate(mc *MoveContext) *Violation {
	vehicle := mc.RouteCtx.Route.Actor.Vehicle

	switch mc.Kind {
	case MoveRoute:
		demand := totalDemand(mc.Job)
		for i, d := range demand {
			if i < len(vehicle.Capacity) && d > vehicle.Capacity[i] {
				return &Violation{Code: state.ReasonCapacity, Stopped: true}
			}
		}

		return nil
	case MoveActivity:
		ac := mc.ActivityCtx
		if ac.Target == nil || ac.Target.Job == nil {
			return nil
		}
		demand := ac.Target.Job.Attrs.Demand()
		if demand == nil {
			return nil
		}
		prevIdx := ac.Index - 1
		maxPast := mc.RouteCtx.State.ActivityCapacity(prevIdx, state.KeyMaxPastCapacity)
		for i, d := range demand {
			proposed := d
			if i < len(maxPast) {
				proposed += maxPast[i]
			}
			if i < len(vehicle.Capacity) && proposed > vehicle.Capacity[i] {
				return &Violation{Code: state.ReasonCapacity, Stopped: false}
			}
		}

		return nil
	default:
		return nil
	}
}

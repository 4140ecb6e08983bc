package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Cost contributes the per-route fixed cost and per-activity
// service-time premium to the "cost" objective tier (§4.5), alongside
// Transport's distance/duration contribution.
type Cost struct {
	ActivityCost model.ActivityCost
}

// NewCost returns the Cost feature wired to activity.
func NewCost(activity model.ActivityCost) Feature {
	c := &Cost{ActivityCost: activity}

	return Feature{Name: "cost", Objective: c}
}

// Estimate implements Objective: the marginal service-time premium of
// placing Target.
func (c *Cost) Estimate(mc *MoveContext) float64 {
	if mc.Kind != MoveActivity {
		return 0
	}
	actor := mc.RouteCtx.Route.Actor

	return c.ActivityCost.ServiceCost(actor, mc.ActivityCtx.Target.Place.Duration)
}

// Fitness implements Objective: summed fixed costs (one per non-empty
// route) plus summed waiting-time premiums.
func (c *Cost) Fitness(sc *state.SolutionContext) float64 {
	var total float64
	for _, rc := range sc.Routes {
		if rc.Route.Tour.JobCount() == 0 {
			continue
		}
		vehicle := rc.Route.Actor.Vehicle
		total += vehicle.Costs.Fixed

		last := rc.Route.Tour.Len() - 1
		waiting, _ := rc.State.ActivityFloat(0, state.KeyWaitingTime)
		total += c.ActivityCost.WaitingCost(rc.Route.Actor, waiting)
		_ = last
	}

	return total
}

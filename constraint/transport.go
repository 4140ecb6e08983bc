package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// Transport maintains schedule/latest-arrival state and rejects any
// insertion that would push a subsequent activity past its precomputed
// latest arrival, or the candidate itself past its own time window
// (§4.2 "Transport"). It also contributes the distance/duration cost
// tier to the Objective.
type Transport struct {
	TransportCost model.TransportCost
	ActivityCost  model.ActivityCost
}

// NewTransport returns the Transport feature wired to cost.
func NewTransport(cost model.TransportCost, activity model.ActivityCost) Feature {
	t := &Transport{TransportCost: cost, ActivityCost: activity}

	return Feature{Name: "transport", Constraint: t, Objective: t}
}

func profileOf(mc *MoveContext) string {
	return mc.RouteCtx.Route.Actor.Vehicle.ProfileID
}

func locOf(a *solution.Activity) (model.Location, bool) {
	if a == nil || a.Place.Location == nil {
		return 0, false
	}

	return *a.Place.Location, true
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// Evaluate implements Constraint.
func (t *Transport) Evaluate(mc *MoveContext) *Violation {
	if mc.Kind != MoveActivity {
		return nil
	}
	ac := mc.ActivityCtx
	profile := profileOf(mc)

	prevLoc, prevOK := locOf(ac.Prev)
	targetLoc, targetOK := locOf(ac.Target)
	var travel float64
	if prevOK && targetOK {
		travel = t.TransportCost.Duration(profile, prevLoc, targetLoc)
	}
	arrival := maxF(ac.Prev.Schedule.Departure+travel, ac.Target.Place.Window.Start)
	if arrival > ac.Target.Place.Window.End+1e-9 {
		return &Violation{Code: state.ReasonTime, Stopped: false}
	}
	departure := arrival + ac.Target.Place.Duration

	if ac.Next == nil {
		return nil
	}
	nextLoc, nextOK := locOf(ac.Next)
	var travelNext float64
	if targetOK && nextOK {
		travelNext = t.TransportCost.Duration(profile, targetLoc, nextLoc)
	}
	newNextArrival := maxF(departure+travelNext, ac.Next.Place.Window.Start)

	latest, ok := mc.RouteCtx.State.ActivityFloat(ac.Index, state.KeyLatestArrival)
	if ok && newNextArrival > latest+1e-9 {
		return &Violation{Code: state.ReasonTime, Stopped: true}
	}

	return nil
}

// Estimate implements Objective: the marginal distance cost of detouring
// through Target between Prev and Next.
func (t *Transport) Estimate(mc *MoveContext) float64 {
	if mc.Kind != MoveActivity {
		return 0
	}
	ac := mc.ActivityCtx
	profile := profileOf(mc)
	vehicle := mc.RouteCtx.Route.Actor.Vehicle

	prevLoc, prevOK := locOf(ac.Prev)
	targetLoc, targetOK := locOf(ac.Target)
	nextLoc, nextOK := locOf(ac.Next)

	var direct, viaTarget float64
	if prevOK && targetOK {
		viaTarget += t.TransportCost.Distance(profile, prevLoc, targetLoc)
	}
	if ac.Next != nil {
		if targetOK && nextOK {
			viaTarget += t.TransportCost.Distance(profile, targetLoc, nextLoc)
		}
		if prevOK && nextOK {
			direct = t.TransportCost.Distance(profile, prevLoc, nextLoc)
		}
	}

	return (viaTarget - direct) * vehicle.Costs.PerDistance
}

// Fitness implements Objective: the sum of every route's running
// distance/duration premium cost (§4.2 cost tier).
func (t *Transport) Fitness(sc *state.SolutionContext) float64 {
	var total float64
	for _, rc := range sc.Routes {
		dist, _ := rc.State.RouteFloat(state.KeyTotalDistance)
		dur, _ := rc.State.RouteFloat(state.KeyTotalDuration)
		vehicle := rc.Route.Actor.Vehicle
		total += dist*vehicle.Costs.PerDistance + dur*vehicle.Costs.PerDriving
	}

	return total
}

package constraint

import (
	"math"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Reachable forbids insertion between activities whose profile-specific
// travel cost is infinite (a RoutingError, §7 — never fatal, just a hard
// rejection at this position, §4.2 "Reachable").
type Reachable struct {
	TransportCost model.TransportCost
}

// NewReachable returns the Reachable feature wired to cost.
func NewReachable(cost model.TransportCost) Feature {
	return Feature{Name: "reachable", Constraint: &Reachable{TransportCost: cost}}
}

// Evaluate implements Constraint.
func (r *Reachable) Evaluate(mc *MoveContext) *Violation {
	if mc.Kind != MoveActivity {
		return nil
	}
	ac := mc.ActivityCtx
	profile := profileOf(mc)

	if prevLoc, ok := locOf(ac.Prev); ok {
		if targetLoc, ok2 := locOf(ac.Target); ok2 {
			if math.IsInf(r.TransportCost.Distance(profile, prevLoc, targetLoc), 1) {
				return &Violation{Code: state.ReasonReachable, Stopped: false}
			}
		}
	}
	if ac.Next != nil {
		if targetLoc, ok := locOf(ac.Target); ok {
			if nextLoc, ok2 := locOf(ac.Next); ok2 {
				if math.IsInf(r.TransportCost.Distance(profile, targetLoc, nextLoc), 1) {
					return &Violation{Code: state.ReasonReachable, Stopped: false}
				}
			}
		}
	}

	return nil
}

package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Locks forbids removal of locked jobs (enforced by the ruin package
// directly via SolutionContext.IsLocked) and permits insertion only on the
// Lock's vehicle and at the Lock's Position, if any (§4.2 "Locks"). The
// Lock's Order is not checked: the relative order of a Lock's jobs within
// the tour is not enforced.
type Locks struct {
	byJob map[string]model.Lock
}

// NewLocks returns the Locks feature indexed over problem.Locks.
func NewLocks(locks []model.Lock) Feature {
	byJob := make(map[string]model.Lock)
	for _, lk := range locks {
		for _, id := range lk.JobIDs {
			byJob[id] = lk
		}
	}

	return Feature{Name: "locks", Constraint: &Locks{byJob: byJob}}
}

// Evaluate implements Constraint.
func (l *Locks) Evaluate(mc *MoveContext) *Violation {
	lk, ok := l.byJob[mc.Job.JobID()]
	if !ok {
		return nil
	}

	switch mc.Kind {
	case MoveRoute:
		if mc.RouteCtx.Route.Actor.VehicleID != lk.VehicleID {
			return &Violation{Code: state.ReasonLocked, Stopped: true}
		}

		return nil
	case MoveActivity:
		return l.evaluatePosition(mc, lk)
	default:
		return nil
	}
}

func (l *Locks) evaluatePosition(mc *MoveContext, lk model.Lock) *Violation {
	ac := mc.ActivityCtx
	tourLen := mc.RouteCtx.Route.Tour.Len()

	switch lk.Position {
	case model.LockPositionDeparture:
		if ac.Index != 1 {
			return &Violation{Code: state.ReasonLocked, Stopped: false}
		}
	case model.LockPositionArrival:
		if ac.Next != nil {
			return &Violation{Code: state.ReasonLocked, Stopped: false}
		}
	case model.LockPositionFixed:
		if ac.Index != 1 && ac.Next != nil && ac.Index != tourLen-1 {
			return &Violation{Code: state.ReasonLocked, Stopped: false}
		}
	}

	return nil
}

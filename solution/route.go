package solution

import "github.com/routeforge/vrp/model"

// Route is one vehicle actor's executed tour (§3).
type Route struct {
	Actor *model.Actor
	Tour  *Tour
}

// NewRoute builds an empty Route from actor's shift: a Start activity at
// the shift's Start place, and — if the shift declares one — an End
// activity at the shift's End place.
func NewRoute(actor *model.Actor) *Route {
	shiftStart, _ := actor.Detail.Start.Resolve(0)
	var startLoc *model.Location
	if actor.Detail.Start.Location != nil {
		loc := *actor.Detail.Start.Location
		startLoc = &loc
	}
	start := &Activity{
		Kind: KindStart,
		Place: model.ResolvedPlace{
			Location: startLoc,
			Duration: actor.Detail.Start.Duration,
			Window:   shiftStart,
		},
	}

	var end *Activity
	if actor.Detail.End != nil {
		shiftEnd, _ := actor.Detail.End.Resolve(0)
		var endLoc *model.Location
		if actor.Detail.End.Location != nil {
			loc := *actor.Detail.End.Location
			endLoc = &loc
		}
		end = &Activity{
			Kind: KindEnd,
			Place: model.ResolvedPlace{
				Location: endLoc,
				Duration: actor.Detail.End.Duration,
				Window:   shiftEnd,
			},
		}
	}

	return &Route{Actor: actor, Tour: NewTour(start, end)}
}

// Clone returns a deep copy of the Route (Actor is shared by reference —
// Problem-owned immutable data; Tour is deep-copied).
func (r *Route) Clone() *Route {
	return &Route{Actor: r.Actor, Tour: r.Tour.Clone()}
}

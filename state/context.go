package state

import "github.com/routeforge/vrp/solution"

// RouteContext pairs a Route with its RouteState (§3). The state package
// is the only place that mutates RouteState; everything downstream
// (constraint, insertion, ruin) reads it through this type.
type RouteContext struct {
	Route *solution.Route
	State *RouteState
}

// NewRouteContext builds a RouteContext for route with an empty,
// correctly-sized RouteState. Callers must run Update (update.go) before
// relying on any state value.
func NewRouteContext(route *solution.Route) *RouteContext {
	return &RouteContext{
		Route: route,
		State: NewRouteState(route.Tour.Len()),
	}
}

// Clone returns a deep copy of rc (Route and State both deep-copied).
func (rc *RouteContext) Clone() *RouteContext {
	return &RouteContext{
		Route: rc.Route.Clone(),
		State: rc.State.Clone(),
	}
}

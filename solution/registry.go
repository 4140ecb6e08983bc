package solution

import "github.com/routeforge/vrp/model"

// Registry is the pool of Actors not currently carrying a Route (§3
// SolutionContext invariant: "registry plus placed-route-actors equals the
// full actor set").
type Registry struct {
	available []*model.Actor
}

// NewRegistry returns a Registry seeded with every actor in fleet.
func NewRegistry(fleet *model.Fleet) *Registry {
	actors := fleet.Actors()
	cp := make([]*model.Actor, len(actors))
	copy(cp, actors)

	return &Registry{available: cp}
}

// Next returns an available actor (and removes it from the pool), or
// (nil, false) if none remain.
func (r *Registry) Next() (*model.Actor, bool) {
	if len(r.available) == 0 {
		return nil, false
	}
	a := r.available[0]
	r.available = r.available[1:]

	return a, true
}

// Release returns actor to the pool (used when a Route becomes empty and
// is discarded, e.g. after ruin removes every job from it).
func (r *Registry) Release(actor *model.Actor) {
	r.available = append(r.available, actor)
}

// Available returns the actors currently unused, in pool order.
func (r *Registry) Available() []*model.Actor {
	return r.available
}

// Clone returns a deep copy of the registry (actors are shared by
// reference — Problem-owned immutable data).
func (r *Registry) Clone() *Registry {
	cp := make([]*model.Actor, len(r.available))
	copy(cp, r.available)

	return &Registry{available: cp}
}

package constraint

import "github.com/routeforge/vrp/model"

// StandardFeatures returns the default feature set in the declaration
// order the contract requires (§4.2 "features are applied in declaration
// order"): hard checks first (transport, capacity, skills, locks,
// reachable), then the conditional-transition features (breaks, reloads),
// then the cost objective.
func StandardFeatures(problem *model.Problem) []Feature {
	return []Feature{
		NewTransport(problem.TransportCost, problem.ActivityCost),
		NewCapacity(),
		NewSkills(),
		NewLocks(problem.Locks),
		NewReachable(problem.TransportCost),
		NewBreaks(),
		NewReloads(),
		NewCost(problem.ActivityCost),
	}
}

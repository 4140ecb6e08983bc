package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Pipeline composes an ordered Feature sequence plus the profile-scoped
// costs every feature's state update needs (§4.2).
type Pipeline struct {
	Features []Feature
	Profile  string
	Transport model.TransportCost
	Activity  model.ActivityCost
}

// New returns a Pipeline over features, scoped to one routing profile.
func New(profile string, transport model.TransportCost, activity model.ActivityCost, features ...Feature) *Pipeline {
	return &Pipeline{Features: features, Profile: profile, Transport: transport, Activity: activity}
}

// EvaluateRoute runs every feature's Constraint in declaration order
// against a MoveRoute context, returning the first Violation (§4.2: "a
// failure forbids the (route, job) pair entirely" — any single veto is
// final, so evaluation stops there).
func (p *Pipeline) EvaluateRoute(mc *MoveContext) *Violation {
	for _, f := range p.Features {
		if f.Constraint == nil {
			continue
		}
		if v := f.Constraint.Evaluate(mc); v != nil {
			return v
		}
	}

	return nil
}

// EvaluateActivity runs every feature's Constraint in declaration order
// against a MoveActivity context. It returns the first Violation; if that
// Violation has Stopped set, the caller should prune every later position
// in this route for this job (§4.2 "stopped=true").
func (p *Pipeline) EvaluateActivity(mc *MoveContext) *Violation {
	for _, f := range p.Features {
		if f.Constraint == nil {
			continue
		}
		if v := f.Constraint.Evaluate(mc); v != nil {
			return v
		}
	}

	return nil
}

// EstimateActivity sums Objective.Estimate across every feature carrying
// an Objective — the local cost the insertion engine ranks candidate
// positions by (§4.2 "the engine sums local estimates").
func (p *Pipeline) EstimateActivity(mc *MoveContext) float64 {
	var total float64
	for _, f := range p.Features {
		if f.Objective == nil {
			continue
		}
		total += f.Objective.Estimate(mc)
	}

	return total
}

// Fitness sums Objective.Fitness across every feature carrying an
// Objective — the global ranking used by the population/acceptance
// policy (§4.2).
func (p *Pipeline) Fitness(sc *state.SolutionContext) float64 {
	var total float64
	for _, f := range p.Features {
		if f.Objective == nil {
			continue
		}
		total += f.Objective.Fitness(sc)
	}

	return total
}

// AcceptInsertion runs every feature's AcceptInsertion hook in declaration
// order (§4.2 "State contract").
func (p *Pipeline) AcceptInsertion(sc *state.SolutionContext, routeIndex int, job model.Job) {
	for _, f := range p.Features {
		if f.State == nil {
			continue
		}
		f.State.AcceptInsertion(sc, routeIndex, job)
	}
}

// AcceptRouteState recomputes rc's RouteState unconditionally (§14 Open
// Question decision: the source runs this unconditionally for safety,
// regardless of whether rc was actually touched) and then runs every
// feature's AcceptRouteState hook in declaration order, so feature-owned
// route-level side effects (e.g. Reloads pruning, Breaks ignoring) see
// up-to-date schedule/capacity state.
func (p *Pipeline) AcceptRouteState(rc *state.RouteContext) {
	state.Update(rc, p.Profile, p.Transport, p.Activity)
	for _, f := range p.Features {
		if f.State == nil {
			continue
		}
		f.State.AcceptRouteState(rc)
	}
}

// AcceptSolutionState runs AcceptRouteState for every touched route (all
// of them — the pipeline has no cheap way to know which routes changed
// since the last acceptance, and §4.2 mandates this ran unconditionally
// anyway) before running every feature's AcceptSolutionState hook, per the
// ordering rule "accept_route_state runs for every touched route before
// accept_solution_state".
func (p *Pipeline) AcceptSolutionState(sc *state.SolutionContext) {
	for _, rc := range sc.Routes {
		p.AcceptRouteState(rc)
	}
	for _, f := range p.Features {
		if f.State == nil {
			continue
		}
		f.State.AcceptSolutionState(sc)
	}
}

// Transitions runs every feature's conditional-transition rule and
// returns the merged set of jobs that should move to ignored.
func (p *Pipeline) Transitions(sc *state.SolutionContext) []IgnoreTransition {
	var out []IgnoreTransition
	for _, f := range p.Features {
		if f.Transition == nil {
			continue
		}
		out = append(out, f.Transition(sc)...)
	}

	return out
}

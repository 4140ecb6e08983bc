// Package solution defines the mutable, per-individual structures built
// from a model.Problem: Activities, Tours, Routes and the Actor registry
// (§3 "Activity", "Route"). Nothing here is shared across individuals —
// solution.Route values are deep-copied before mutation (copy-on-mutate,
// §3 "Lifecycle"); only the model.Job/model.Single values they reference
// are shared, matching the teacher's Vertex/Edge-by-ID sharing discipline
// in core/methods_clone.go.
package solution

import "github.com/routeforge/vrp/model"

// Schedule is an activity's resolved arrival/departure pair, in seconds
// from the planning horizon epoch (§3).
type Schedule struct {
	Arrival   float64
	Departure float64
}

// Kind distinguishes the handful of activity roles the standard feature
// set reasons about: terminals carry no job; KindBreak/KindReload carry a
// shift-defined optional stop instead of a plan Job (§4.2 Breaks/Reloads).
type Kind int

const (
	KindStart Kind = iota
	KindEnd
	KindJob
	KindBreak
	KindReload
)

// Activity is one stop in a Tour: a resolved place, its computed schedule,
// and — for KindJob — the Single it realizes. Terminal (start/end)
// activities, and the optional KindBreak/KindReload stops, carry a nil Job
// (§3).
type Activity struct {
	Kind     Kind
	Place    model.ResolvedPlace
	Schedule Schedule
	Job      *model.Single

	// BreakPolicy is set only for KindBreak: the policy under which
	// constraint.Breaks may prune this activity to ignored (§4.2).
	BreakPolicy model.BreakPolicy
}

// IsTerminal reports whether this activity is a tour's start or end.
func (a *Activity) IsTerminal() bool { return a.Kind == KindStart || a.Kind == KindEnd }

// JobID returns the realized Single's ID, or "" if this activity does not
// carry a plan Job (terminals, breaks, reloads).
func (a *Activity) JobID() string {
	if a.Job == nil {
		return ""
	}

	return a.Job.ID
}

// Clone returns a deep copy of a (the Place/Schedule are value types; Job
// is shared by reference per §9 "Shared Arc-of-Single across routes").
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	cp := *a

	return &cp
}

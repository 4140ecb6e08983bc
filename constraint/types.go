// Package constraint implements the ordered feature pipeline of SPEC_FULL
// §4.2: hard route/activity predicates, soft cost contributions,
// state-update hooks and optional merge/conditional-transition rules,
// composed the way algorithms.BFSOptions composes traversal hooks (one
// struct of optional callbacks per concern, rather than one god
// interface).
package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// Violation is a Constraint's non-nil result: a reason code plus whether
// later positions in the same route can be pruned (§4.2 "stopped=true
// means no later position in this route can succeed either").
type Violation struct {
	Code    string
	Stopped bool
}

// MoveKind distinguishes the two MoveContext shapes a Constraint is
// evaluated against.
type MoveKind int

const (
	// MoveRoute is evaluated once per (route, job) pair before position
	// search; a failure forbids the pair entirely.
	MoveRoute MoveKind = iota

	// MoveActivity is evaluated once per candidate insertion position.
	MoveActivity
)

// ActivityContext is the candidate-position detail of a MoveActivity
// MoveContext: the insertion index and its tour neighbours. Prev is never
// nil (every tour has a Start); Next is nil only when Index is the tour's
// last valid position and Target is appended at the very end of a route
// with no End.
type ActivityContext struct {
	Index  int
	Prev   *solution.Activity
	Target *solution.Activity
	Next   *solution.Activity
}

// MoveContext is evaluated by every Constraint/Objective in a Pipeline.
type MoveContext struct {
	Kind        MoveKind
	Solution    *state.SolutionContext
	RouteCtx    *state.RouteContext
	Job         model.Job
	ActivityCtx ActivityContext
}

// Constraint evaluates one MoveContext and returns a non-nil Violation on
// failure (§4.2 "Constraint contract").
type Constraint interface {
	Evaluate(mc *MoveContext) *Violation
}

// Objective contributes to both the global fitness ranking and the local
// per-position cost estimate the insertion engine sums (§4.2 "Objective
// contract").
type Objective interface {
	Fitness(sc *state.SolutionContext) float64
	Estimate(mc *MoveContext) float64
}

// StateFeature implements the three acceptance hooks of §4.2's "State
// contract". Any of the three may be a no-op for a given feature.
type StateFeature interface {
	AcceptInsertion(sc *state.SolutionContext, routeIndex int, job model.Job)
	AcceptRouteState(rc *state.RouteContext)
	AcceptSolutionState(sc *state.SolutionContext)
}

// MergeFunc implements a feature's optional job-combination rule (§4.2).
// No ruin operator calls it; ruin.ClusterRemoval removes jobs without
// merging them.
type MergeFunc func(source, candidate model.Job) (model.Job, string, error)

// TransitionFunc implements a feature's optional conditional-job
// transition: given the current solution, it returns job IDs that should
// move from Required to Ignored (e.g. a break that no longer fits any
// route) and their reason.
type TransitionFunc func(sc *state.SolutionContext) []IgnoreTransition

// IgnoreTransition is one job moved from required/locked into ignored.
type IgnoreTransition struct {
	JobID  string
	Reason string
}

// Feature is one named entry in a Pipeline; Constraint/Objective/State are
// all optional (nil means "this feature does not participate in that
// concern") — the same shape as algorithms.BFSOptions' optional hooks.
type Feature struct {
	Name       string
	Constraint Constraint
	Objective  Objective
	State      StateFeature
	Merge      MergeFunc
	Transition TransitionFunc
}

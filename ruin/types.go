// Package ruin implements the ruin operators of §4.4: mutations that
// deliberately remove jobs from a solution to expand the search frontier,
// leaving the insertion engine to repair the gap next. Every operator
// honours locked jobs and the configured removal-fraction bounds.
package ruin

import (
	"math/rand"

	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Context carries the read-only inputs every operator needs beyond the
// mutable SolutionContext: the immutable Problem, the pipeline used to
// keep RouteState consistent after a removal, and the routing profile
// the distance-based operators rank jobs under.
type Context struct {
	Problem  *model.Problem
	Pipeline *constraint.Pipeline
	Profile  string

	// MinRemoved/MaxRemoved bound the absolute count of jobs one Ruin call
	// may remove; ThresholdRatio additionally caps it at
	// ThresholdRatio * (currently assigned job count), whichever is
	// smaller (§4.4 "bounded by min..=max and a threshold ratio ×
	// assigned_count").
	MinRemoved     int
	MaxRemoved     int
	ThresholdRatio float64
}

// Operator mutates sc in place, moving some jobs from routes back into
// Required (§4.4).
type Operator interface {
	Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand)
}

// budget computes how many jobs this call may remove, given how many are
// currently assigned to routes.
func budget(sc *state.SolutionContext, rc *Context) int {
	assigned := assignedCount(sc)
	max := rc.MaxRemoved
	if max <= 0 {
		max = assigned
	}
	ratioCap := int(rc.ThresholdRatio * float64(assigned))
	if rc.ThresholdRatio > 0 && ratioCap < max {
		max = ratioCap
	}
	if max < rc.MinRemoved {
		max = rc.MinRemoved
	}
	if max < 0 {
		max = 0
	}

	return max
}

func assignedCount(sc *state.SolutionContext) int {
	n := 0
	for _, routeCtx := range sc.Routes {
		n += routeCtx.Route.Tour.JobCount()
	}

	return n
}

// removeJob finds jobID's activity across every route, removes it, and
// appends its Job to Required. It refuses locked jobs (§4.4 "must honour
// locked") and re-runs the pipeline's route-state acceptance for the
// touched route so subsequent operators in the same generation see
// up-to-date capacity/schedule state. Returns false if jobID was locked,
// not found, or already in Required.
func removeJob(sc *state.SolutionContext, rc *Context, jobID string) bool {
	if sc.IsLocked(jobID) {
		return false
	}
	for _, routeCtx := range sc.Routes {
		tour := routeCtx.Route.Tour
		idx, ok := tour.IndexOfJob(jobID)
		if !ok {
			continue
		}
		act := tour.RemoveAt(idx)
		if act.Job == nil {
			return false
		}
		sc.AddRequired(act.Job)
		if rc.Pipeline != nil {
			rc.Pipeline.AcceptRouteState(routeCtx)
		}

		return true
	}

	return false
}

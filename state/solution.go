package state

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
)

// Reason is one diagnostic code explaining why a job could not be placed
// (§6 "unassigned[] entries {job_id, reasons[{code, description}]}").
type Reason struct {
	Code        string
	Description string
}

// Standard reason codes, set by the constraint pipeline's hard checks.
const (
	ReasonCapacity  = "CAPACITY_CONSTRAINT"
	ReasonTime      = "TIME_WINDOW_CONSTRAINT"
	ReasonSkills    = "SKILLS_CONSTRAINT"
	ReasonReachable = "UNREACHABLE"
	ReasonLocked    = "LOCKED_ELSEWHERE"
	ReasonNoRoute   = "NO_ROUTE_AVAILABLE"
)

// UnassignedJob records a job the insertion engine could not place, and
// every reason accumulated across its failed attempts this generation.
type UnassignedJob struct {
	JobID   string
	Reasons []Reason
}

// SolutionContext is one individual's mutable solution state (§3): routes
// with their RouteContext, the required/ignored/locked job pools, the
// unassigned diagnostic map, and the actor registry. Every Job in the
// originating Problem appears in exactly one of required, ignored,
// unassigned, or some route's tour (§3 invariant; §8 "Every job in the
// plan appears exactly once").
type SolutionContext struct {
	Routes     []*RouteContext
	Required   []model.Job
	Ignored    []model.Job
	Locked     *set.Set[string]
	Unassigned map[string]UnassignedJob
	Registry   *solution.Registry
}

// NewSolutionContext builds the initial SolutionContext for problem: every
// job in Required, no routes, a fresh Registry, and Locked seeded from
// problem.Locks.
func NewSolutionContext(problem *model.Problem) *SolutionContext {
	required := make([]model.Job, len(problem.Jobs))
	copy(required, problem.Jobs)

	return &SolutionContext{
		Required:   required,
		Locked:     model.LockedJobs(problem.Locks),
		Unassigned: make(map[string]UnassignedJob),
		Registry:   solution.NewRegistry(problem.Fleet),
	}
}

// MarkUnassigned records reason for jobID in the unassigned map, appending
// to any prior reasons for the same job. It does not remove the job from
// Required; callers do that with RemoveRequired.
func (sc *SolutionContext) MarkUnassigned(jobID string, reason Reason) {
	u := sc.Unassigned[jobID]
	u.JobID = jobID
	u.Reasons = append(u.Reasons, reason)
	sc.Unassigned[jobID] = u
}

// ClearUnassigned removes jobID from the unassigned map (called when a
// later attempt in the same generation succeeds).
func (sc *SolutionContext) ClearUnassigned(jobID string) {
	delete(sc.Unassigned, jobID)
}

// IsLocked reports whether jobID is bound by a Lock (forbidden from
// removal by any ruin operator, §4.4).
func (sc *SolutionContext) IsLocked(jobID string) bool {
	return sc.Locked.Contains(jobID)
}

// RemoveRequired extracts and returns the Job with id from Required, or
// (nil, false) if absent.
func (sc *SolutionContext) RemoveRequired(id string) (model.Job, bool) {
	for i, j := range sc.Required {
		if j.JobID() == id {
			sc.Required = append(sc.Required[:i], sc.Required[i+1:]...)

			return j, true
		}
	}

	return nil, false
}

// AddRequired appends job to Required (used by ruin operators to return
// removed jobs to the pool, and by conditional transitions).
func (sc *SolutionContext) AddRequired(job model.Job) {
	sc.Required = append(sc.Required, job)
}

// RouteCount returns the number of non-empty routes.
func (sc *SolutionContext) RouteCount() int {
	n := 0
	for _, rc := range sc.Routes {
		if rc.Route.Tour.JobCount() > 0 {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of sc: every RouteContext, the Registry, and
// the job pools are independently copied (copy-on-mutate, §3 Lifecycle);
// model.Job values themselves are shared by reference (Problem-owned).
func (sc *SolutionContext) Clone() *SolutionContext {
	routes := make([]*RouteContext, len(sc.Routes))
	for i, rc := range sc.Routes {
		routes[i] = rc.Clone()
	}

	required := make([]model.Job, len(sc.Required))
	copy(required, sc.Required)

	ignored := make([]model.Job, len(sc.Ignored))
	copy(ignored, sc.Ignored)

	locked := sc.Locked.Copy()

	unassigned := make(map[string]UnassignedJob, len(sc.Unassigned))
	for k, v := range sc.Unassigned {
		reasons := make([]Reason, len(v.Reasons))
		copy(reasons, v.Reasons)
		unassigned[k] = UnassignedJob{JobID: v.JobID, Reasons: reasons}
	}

	return &SolutionContext{
		Routes:     routes,
		Required:   required,
		Ignored:    ignored,
		Locked:     locked,
		Unassigned: unassigned,
		Registry:   sc.Registry.Clone(),
	}
}

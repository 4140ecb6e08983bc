package insertion

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// onPlaced is an optional hook the Engine calls after every accepted
// insertion, letting stateful selectors (NearestNeighborSelector) track
// the most recently placed job.
type onPlaced interface {
	Notify(jobID string)
}

// Engine runs the insertion algorithm of §4.3: repeatedly selects a batch
// of required jobs, fans the candidate search out over jobs and routes in
// parallel, reduces the results to one insertion, applies it, and repeats
// until Required is empty or a round places nothing.
type Engine struct {
	Problem  *model.Problem
	Pipeline *constraint.Pipeline
	Selector JobSelector
	Reducer  JobMapReducer
}

// NewEngine returns an Engine wired to the given selector/reducer pair.
func NewEngine(problem *model.Problem, pipeline *constraint.Pipeline, selector JobSelector, reducer JobMapReducer) *Engine {
	return &Engine{Problem: problem, Pipeline: pipeline, Selector: selector, Reducer: reducer}
}

// Run repairs sc in place, placing every insertable job in Required. Jobs
// that cannot be placed at all (no route/position combination is
// feasible for the whole round) are recorded in sc.Unassigned and
// dropped from Required; Run never returns an error for that case — only
// ctx cancellation or a genuine internal failure propagates.
func (e *Engine) Run(ctx context.Context, sc *state.SolutionContext, rng *rand.Rand) error {
	for len(sc.Required) > 0 {
		batch := e.Selector.Select(sc, rng)
		if len(batch) == 0 {
			return nil
		}

		perJob, err := e.evaluateBatch(ctx, sc, batch)
		if err != nil {
			return err
		}

		chosen, ok := e.Reducer.Reduce(perJob, rng)
		if !ok {
			for _, job := range batch {
				sc.MarkUnassigned(job.JobID(), state.Reason{Code: state.ReasonNoRoute, Description: "no feasible route/position found"})
				sc.RemoveRequired(job.JobID())
			}

			continue
		}

		e.apply(sc, chosen)
		if notifier, ok := e.Selector.(onPlaced); ok {
			notifier.Notify(chosen.Job.JobID())
		}
	}

	return nil
}

// evaluateBatch computes every feasible Candidate for every job in batch,
// fanning the per-job search out over an errgroup (§5 "insertion engine
// fans out a data-parallel map over candidate jobs").
func (e *Engine) evaluateBatch(ctx context.Context, sc *state.SolutionContext, batch []model.Job) (map[string][]Candidate, error) {
	results := make([][]Candidate, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range batch {
		i, job := i, job
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = e.candidatesFor(sc, job)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	perJob := make(map[string][]Candidate, len(batch))
	for i, job := range batch {
		if len(results[i]) > 0 {
			perJob[job.JobID()] = results[i]
		}
	}

	return perJob, nil
}

// candidatesFor searches every route and every valid splice position for
// job's first task, returning every feasible Candidate sorted ascending
// by cost (§4.3 step 2). Only the job's first Place is considered and,
// for a Multi, only its first task drives route/position selection —
// later tasks are placed immediately after in the same route, a
// documented simplification of full joint-position search (see
// DESIGN.md).
func (e *Engine) candidatesFor(sc *state.SolutionContext, job model.Job) []Candidate {
	task := job.Tasks()[0]
	if len(task.Places) == 0 {
		return nil
	}
	place := task.Places[0]
	window, _ := place.Resolve(0)
	resolved := model.ResolvedPlace{Location: place.Location, Duration: place.Duration, Window: window}

	var cands []Candidate
	for routeIndex, rc := range sc.Routes {
		mcRoute := &constraint.MoveContext{Kind: constraint.MoveRoute, Solution: sc, RouteCtx: rc, Job: job}
		if v := e.Pipeline.EvaluateRoute(mcRoute); v != nil {
			continue
		}

		positions := rc.Route.Tour.InsertablePositions()
		for _, pos := range positions {
			prev := rc.Route.Tour.At(pos - 1)
			next := rc.Route.Tour.At(pos)
			target := &solution.Activity{Kind: solution.KindJob, Place: resolved, Job: task}
			ac := constraint.ActivityContext{Index: pos, Prev: prev, Target: target, Next: next}
			mc := &constraint.MoveContext{Kind: constraint.MoveActivity, Solution: sc, RouteCtx: rc, Job: job, ActivityCtx: ac}

			v := e.Pipeline.EvaluateActivity(mc)
			if v != nil {
				if v.Stopped {
					break
				}

				continue
			}

			cost := e.Pipeline.EstimateActivity(mc)
			cands = append(cands, Candidate{Job: job, RouteIndex: routeIndex, Position: pos, Cost: cost})
		}
	}

	sortCandidates(cands)

	return cands
}

func sortCandidates(cands []Candidate) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && less(cands[j], cands[j-1]); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

// apply splices c's job into its chosen route/position and runs the
// pipeline's acceptance passes (§4.3 step 4).
func (e *Engine) apply(sc *state.SolutionContext, c Candidate) {
	rc := sc.Routes[c.RouteIndex]
	task := c.Job.Tasks()[0]
	place := task.Places[0]
	window, _ := place.Resolve(0)
	resolved := model.ResolvedPlace{Location: place.Location, Duration: place.Duration, Window: window}

	act := &solution.Activity{Kind: solution.KindJob, Place: resolved, Job: task}
	rc.Route.Tour.Insert(c.Position, act)

	sc.RemoveRequired(c.Job.JobID())
	sc.ClearUnassigned(c.Job.JobID())

	e.Pipeline.AcceptInsertion(sc, c.RouteIndex, c.Job)
	e.Pipeline.AcceptSolutionState(sc)

	for _, t := range e.Pipeline.Transitions(sc) {
		if job, ok := sc.RemoveRequired(t.JobID); ok {
			sc.Ignored = append(sc.Ignored, job)
		}
	}
}

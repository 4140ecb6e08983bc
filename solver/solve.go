package solver

import (
	"fmt"
	"time"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/evolution"
	"github.com/routeforge/vrp/feasibility"
	"github.com/routeforge/vrp/insertion"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/ruin"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// defaultProfile returns the first vehicle's ProfileID, the profile the
// single shared constraint.Pipeline is scoped to (§4.2's Pipeline is
// one-profile-at-a-time; a mixed-profile fleet needs one Pipeline per
// profile, out of scope for this entry point — see DESIGN.md).
func defaultProfile(problem *model.Problem) string {
	if len(problem.Fleet.Vehicles) == 0 {
		return ""
	}

	return problem.Fleet.Vehicles[0].ProfileID
}

// initialSolution builds the starting SolutionContext: every job required,
// one empty Route per Actor, and every RouteState populated via the
// pipeline's accept_route_state pass (§3 "Lifecycle").
func initialSolution(problem *model.Problem, pipeline *constraint.Pipeline) *state.SolutionContext {
	sc := state.NewSolutionContext(problem)
	for {
		actor, ok := sc.Registry.Next()
		if !ok {
			break
		}
		route := solution.NewRoute(actor)
		rc := state.NewRouteContext(route)
		sc.Routes = append(sc.Routes, rc)
		pipeline.AcceptRouteState(rc)
	}

	return sc
}

// infeasibleSolution builds the empty SolutionContext returned when
// feasibility.Check rules the instance out up front: every job is moved
// from Required into Unassigned with the most specific reason the
// report can attribute (skills for report.Unreachable, capacity for
// everything else, since a failing bound with no unreachable jobs can
// only be the aggregate capacity/demand comparison).
func infeasibleSolution(problem *model.Problem, report *feasibility.Report) *state.SolutionContext {
	sc := state.NewSolutionContext(problem)

	unreachable := make(map[string]struct{}, len(report.Unreachable))
	for _, id := range report.Unreachable {
		unreachable[id] = struct{}{}
	}

	for _, job := range problem.Jobs {
		reason := state.Reason{Code: state.ReasonCapacity, Description: "fleet capacity cannot serve total demand"}
		if _, ok := unreachable[job.JobID()]; ok {
			reason = state.Reason{Code: state.ReasonSkills, Description: "no vehicle in the fleet carries the required skills"}
		}
		sc.MarkUnassigned(job.JobID(), reason)
		sc.RemoveRequired(job.JobID())
	}

	return sc
}

// Solve runs the full pipeline (§2): an eager feasibility.Check, then the
// evolution loop, returning the best Individuum's SolutionContext
// translated into the §6 output shape.
func Solve(problem *model.Problem, cfg *config.Config, env *Environment) (*Output, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if env == nil {
		env = NewEnvironment(1, cfg)
	}

	ctx := env.Quota.Context()

	report, err := feasibility.Check(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if !report.Feasible {
		return BuildOutput(problem, infeasibleSolution(problem, report), 0), nil
	}

	profile := defaultProfile(problem)
	pipeline := BuildPipeline(problem, profile)

	sc := initialSolution(problem, pipeline)

	// Seed generation 0 with a fully recreated solution rather than an
	// empty one: the loop's Ruin/Recreate cycle perturbs an existing
	// placement, it does not build the first one (§4.5 "Select(parent
	// from population)" presupposes a population member already exists).
	seedEngine := insertion.NewEngine(problem, pipeline, insertion.AllSelector{}, insertion.BestReducer{})
	if err := seedEngine.Run(ctx, sc, env.RNG); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	mutations, weights, err := BuildMutations(problem, pipeline, cfg)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	objective := evolution.NewObjective(pipeline)
	ruinCtx := &ruin.Context{
		Problem:        problem,
		Pipeline:       pipeline,
		Profile:        profile,
		MinRemoved:     1,
		MaxRemoved:     0,
		ThresholdRatio: cfg.Population.InitialQuota,
	}

	var population evolution.Population
	if cfg.Population.Algorithm == config.AlgorithmRosomaxa {
		population = evolution.NewGridPopulation(cfg.Population.MaxSize)
	} else {
		population = evolution.NewGreedyPopulation(cfg.Population.MaxSize)
	}

	termination := evolution.Any{
		evolution.MaxGeneration{Limit: cfg.MaxGenerations},
		evolution.MaxTime{Limit: time.Duration(cfg.MaxTimeSeconds) * time.Second},
		evolution.GoalSatisfied{Satisfied: problem.Goal.Satisfied},
	}
	if cfg.MinVariation.Sample > 0 {
		termination = append(termination, evolution.VariationCoefficient{
			Threshold:  cfg.MinVariation.Threshold,
			MinSamples: cfg.MinVariation.Sample,
		})
	}

	evoCfg := &evolution.Config{
		Objective:   objective,
		Selector:    evolution.Tournament{Size: 3},
		Accept:      evolution.Greedy{},
		Population:  population,
		Terminate:   termination,
		Mutations:   mutations,
		Weights:     weights,
		RuinContext: ruinCtx,
		Bandit:      evolution.NewBandit(0.1),
	}

	result, err := evolution.Run(ctx, evoCfg, sc, cfg.MaxGenerations, env.RNG)
	if err != nil && result == nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	best := sc
	generation := 0
	if result != nil && result.Best != nil {
		best = result.Best.Solution
		generation = result.Generations
		env.Logger.LogBest(generation, result.Best.Values)
	}
	env.Logger.LogPopulation(generation, population.Len())
	env.Metrics.Track(generation, population.Len(), objective.Evaluate(best))

	return BuildOutput(problem, best, generation), nil
}

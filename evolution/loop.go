package evolution

import (
	"context"
	"math/rand"
	"time"

	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/insertion"
	"github.com/routeforge/vrp/localsearch"
	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/ruin"
	"github.com/routeforge/vrp/state"
)

// Mutation names one (ruin, recreate) pair the bandit can choose between
// (§4.5 "picks a (ruin, recreate) pair per generation"): a ruin operator
// paired with the insertion engine configuration used to repair its
// damage. Engine may be nil for a pure local-search mutation, in which
// case Ruin alone is expected to be a no-op and LocalSearch does the
// actual work.
type Mutation struct {
	Name   string
	Ruin   ruin.Operator
	Engine *insertion.Engine

	// LocalSearch, if set, runs after Engine on every route of the
	// mutated solution (§6 mutation tree's "local_search" node).
	LocalSearch *constraint.Pipeline
}

// applyLocalSearch runs localsearch.TwoOpt once per route until no
// further improvement is found, capped to avoid a pathological infinite
// loop on a degenerate cost function.
func applyLocalSearch(sc *state.SolutionContext, pipeline *constraint.Pipeline) {
	const maxPasses = 50
	for _, rc := range sc.Routes {
		for pass := 0; pass < maxPasses; pass++ {
			if !localsearch.TwoOpt(rc, pipeline) {
				break
			}
		}
	}
}

// Config bundles everything one Run call needs: the candidate-ranking
// machinery (Objective, Selector, Accept, Population, Termination), the
// available Mutations, and the ruin.Context shared by every ruin call.
type Config struct {
	Objective   *Objective
	Selector    Selector
	Accept      Accept
	Population  Population
	Terminate   Termination
	Mutations   []Mutation
	// Weights optionally carries each Mutation's configuration-declared
	// prior weight (by Name), passed through to Bandit.Choose.
	Weights     map[string]float64
	RuinContext *ruin.Context
	Bandit      *Bandit
}

// WeightedMutation pairs a Mutation with its configuration-declared prior
// weight, the unit solver.BuildMutations assembles from the §6 mutation
// tree before handing the flattened list to Config.
type WeightedMutation struct {
	Mutation Mutation
	Weight   float64
}

// Result is Run's outcome: the best Individuum found and the generation
// count actually completed.
type Result struct {
	Best        *Individuum
	Generations int
}

// searchPhase labels the current generation's bandit state as
// "exploration" for the first half of the configured horizon and
// "exploitation" thereafter (§4.5 "states summarize search-phase
// hints"). horizon <= 0 means no horizon is known, so the loop stays in
// "exploration" throughout (a MaxTime/indefinite run with no generation
// budget to fall back on).
func searchPhase(gen, horizon int) string {
	if horizon > 0 && gen >= horizon/2 {
		return "exploitation"
	}

	return "exploration"
}

// Run drives the evolution loop (§4.5): Select a parent, draw a mutation
// via the bandit, Ruin then recreate (insertion.Engine.Run) a clone,
// Evaluate it under cfg.Objective, Accept/reject against the parent, add
// survivors to cfg.Population, and repeat until cfg.Terminate fires.
func Run(ctx context.Context, cfg *Config, initial *state.SolutionContext, generations int, rng *rand.Rand) (*Result, error) {
	started := time.Now()
	best := NewIndividuum(initial, cfg.Objective.Evaluate(initial), 0)
	cfg.Population.Add(best)

	names := make([]string, len(cfg.Mutations))
	byName := make(map[string]Mutation, len(cfg.Mutations))
	for i, m := range cfg.Mutations {
		names[i] = m.Name
		byName[m.Name] = m
	}

	gen := 0
	for !cfg.Terminate.Done(cfg.Population, gen, started) {
		if err := ctx.Err(); err != nil {
			return &Result{Best: cfg.Population.Best(), Generations: gen}, err
		}
		parent := cfg.Selector.Select(cfg.Population, rng)
		if parent == nil || len(names) == 0 {
			break
		}

		fromState := searchPhase(gen, generations)
		chosenName := cfg.Bandit.Choose(fromState, fromState, names, cfg.Weights, rng)
		mutation := byName[chosenName]

		candidate := parent.Solution.Clone()
		streamSeed := int64(gen) + 1
		localRng := randx.Derive(rng, uint64(streamSeed))

		mutation.Ruin.Ruin(candidate, cfg.RuinContext, localRng)
		if mutation.Engine != nil {
			_ = mutation.Engine.Run(ctx, candidate, localRng)
		}
		if mutation.LocalSearch != nil {
			applyLocalSearch(candidate, mutation.LocalSearch)
		}

		values := cfg.Objective.Evaluate(candidate)
		ind := NewIndividuum(candidate, values, gen+1)

		toState := searchPhase(gen+1, generations)
		reward := parent.Values[len(parent.Values)-1] - values[len(values)-1]
		cfg.Bandit.Reward(fromState, toState, chosenName, reward)

		if cfg.Accept.Accept(ind, parent, gen, rng) {
			cfg.Population.Add(ind)
		}

		gen++
	}

	return &Result{Best: cfg.Population.Best(), Generations: gen}, nil
}

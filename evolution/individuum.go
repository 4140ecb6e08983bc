// Package evolution implements the §4.5 evolution loop's building blocks:
// Individuum, Population (greedy-first and a GSOM-style diversity grid),
// Select/Accept policies, the hierarchical Objective, Termination, and the
// hyper-heuristic multi-armed bandit that picks a (ruin, recreate) pair
// per generation.
package evolution

import (
	"github.com/google/uuid"

	"github.com/routeforge/vrp/state"
)

// Individuum is one candidate solution in the population (§3): a
// SolutionContext, its ObjectiveValues (a fixed-arity vector, primary
// tier first), and the generation it was discovered at.
type Individuum struct {
	ID         string
	Solution   *state.SolutionContext
	Values     []float64
	Generation int
}

// NewIndividuum wraps sol with freshly computed values, minting a random
// id via uuid.NewString — the registry/Individuum identity mechanism
// named in §12's domain-stack wiring.
func NewIndividuum(sol *state.SolutionContext, values []float64, generation int) *Individuum {
	return &Individuum{ID: uuid.NewString(), Solution: sol, Values: values, Generation: generation}
}

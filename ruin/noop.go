package ruin

import (
	"math/rand"

	"github.com/routeforge/vrp/state"
)

// Noop ruins nothing. It is the ruin half of a pure local-search mutation
// node (§6 mutation tree's "local_search"), where the recreate half is a
// localsearch pass rather than the insertion engine.
type Noop struct{}

// Ruin implements Operator.
func (Noop) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {}

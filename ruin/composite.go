package ruin

import (
	"math/rand"

	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/state"
)

// WeightedOperator pairs an Operator with its selection weight for
// CompositeRuin (§4.4 "weights are configuration inputs").
type WeightedOperator struct {
	Operator Operator
	Weight   float64
}

// CompositeRuin draws one of its member operators per call by
// weighted random choice and delegates to it (§4.4 "Composite Ruin").
type CompositeRuin struct {
	Members []WeightedOperator
}

// Ruin implements Operator.
func (c CompositeRuin) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	if len(c.Members) == 0 {
		return
	}
	weights := make([]float64, len(c.Members))
	for i, m := range c.Members {
		weights[i] = m.Weight
	}
	idx := randx.WeightedChoice(rng, weights)
	if idx < 0 {
		return
	}
	c.Members[idx].Operator.Ruin(sc, rc, rng)
}

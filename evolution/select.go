package evolution

import (
	"math"
	"math/rand"

	"github.com/routeforge/vrp/randx"
)

// Selector picks one parent Individuum from pop to mutate this generation
// (§4.5 "Select").
type Selector interface {
	Select(pop Population, rng *rand.Rand) *Individuum
}

// SelectBest always returns the population's current best (§4.5
// "SelectBest").
type SelectBest struct{}

// Select implements Selector.
func (SelectBest) Select(pop Population, rng *rand.Rand) *Individuum {
	return pop.Best()
}

// SelectRandom picks one of pop's members at random, geometrically biased
// toward better rank: member i (0 = best, sorted ascending by Objective)
// is weighted e^(-i) (§4.5 "SelectRandom... rank-weighted").
type SelectRandom struct{}

// Select implements Selector.
func (SelectRandom) Select(pop Population, rng *rand.Rand) *Individuum {
	all := rankedAscending(pop)
	if len(all) == 0 {
		return nil
	}
	weights := make([]float64, len(all))
	for i := range all {
		weights[i] = math.Exp(-float64(i))
	}
	idx := randx.WeightedChoice(rng, weights)
	if idx < 0 {
		return nil
	}

	return all[idx]
}

// Tournament draws Size members uniformly at random (with replacement)
// and returns the best of the sample (§4.5 "Tournament").
type Tournament struct {
	Size int
}

// Select implements Selector.
func (t Tournament) Select(pop Population, rng *rand.Rand) *Individuum {
	all := pop.All()
	if len(all) == 0 {
		return nil
	}
	size := t.Size
	if size < 1 {
		size = 1
	}
	best := all[randx.Intn(rng, len(all))]
	for i := 1; i < size; i++ {
		cand := all[randx.Intn(rng, len(all))]
		if Less(cand.Values, best.Values) {
			best = cand
		}
	}

	return best
}

// rankedAscending returns pop's members sorted best-first. Population
// implementations that are already kept sorted (GreedyPopulation) return
// this directly from All(); GridPopulation's arena order is not sorted, so
// it is sorted here.
func rankedAscending(pop Population) []*Individuum {
	all := append([]*Individuum(nil), pop.All()...)
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && Less(all[j].Values, all[j-1].Values); j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	return all
}

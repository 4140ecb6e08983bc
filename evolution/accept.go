package evolution

import (
	"math"
	"math/rand"
)

// Accept decides whether candidate replaces incumbent as the generation's
// outcome (§4.5 "Accept").
type Accept interface {
	Accept(candidate, incumbent *Individuum, generation int, rng *rand.Rand) bool
}

// Greedy accepts candidate only when it is strictly better than incumbent
// under lexicographic tier order (§4.5 "Greedy: strictly better under
// lexicographic order"). A nil incumbent always loses.
type Greedy struct{}

// Accept implements Accept.
func (Greedy) Accept(candidate, incumbent *Individuum, generation int, rng *rand.Rand) bool {
	if incumbent == nil {
		return true
	}

	return Less(candidate.Values, incumbent.Values)
}

// SimulatedAnnealing accepts any improving candidate outright, and accepts
// a worsening candidate with probability p(gen) = MaxProb -
// exp(-ln(2)*gen/Generations) (§4.5 "SmoothRandom/SimulatedAnnealing").
// p(gen) rises with gen: it is MaxProb-1 at gen 0 and MaxProb-0.5 at
// gen == Generations. A non-positive p rejects every worsening candidate,
// so early generations behave like Greedy.
type SimulatedAnnealing struct {
	MaxProb     float64
	Generations int
}

// Accept implements Accept.
func (s SimulatedAnnealing) Accept(candidate, incumbent *Individuum, generation int, rng *rand.Rand) bool {
	if incumbent == nil || Less(candidate.Values, incumbent.Values) {
		return true
	}
	if s.Generations <= 0 {
		return false
	}
	p := s.MaxProb - math.Exp(-math.Ln2*float64(generation)/float64(s.Generations))
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	return rng.Float64() < p
}

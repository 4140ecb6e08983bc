package evolution

import (
	"math/rand"

	"github.com/routeforge/vrp/randx"
)

// arm accumulates the reward history of one (fromState, toState,
// operator) triple.
type arm struct {
	pulls  int
	reward float64
}

// mean returns the arm's average observed reward, or 0 if never pulled.
func (a arm) mean() float64 {
	if a.pulls == 0 {
		return 0
	}

	return a.reward / float64(a.pulls)
}

// Bandit is the hyper-heuristic operator selector of §4.5: it tracks
// reward history per (from_state, to_state, operator_name) triple and
// draws the next operator for a given (from, to) pair by reward-weighted
// random choice, falling back to uniform exploration for untried arms.
type Bandit struct {
	arms map[string]*arm
	// Baseline is added to every arm's mean reward before weighting, so an
	// untried or zero-reward arm still has a nonzero chance of being drawn
	// (pure exploitation would starve it forever).
	Baseline float64
}

// NewBandit returns a Bandit with a small positive exploration baseline.
func NewBandit(baseline float64) *Bandit {
	if baseline <= 0 {
		baseline = 0.1
	}

	return &Bandit{arms: make(map[string]*arm), Baseline: baseline}
}

func key(from, to, operator string) string {
	return from + "\x00" + to + "\x00" + operator
}

// Choose draws one of operators by reward-weighted sampling over the
// (from, to, operator) triples seen so far. priors optionally scales each
// operator's weight by a configuration-supplied prior (e.g. the §6
// mutation tree's declared method weights) before the learned reward is
// added; a nil priors map or a missing entry defaults to 1.
func (b *Bandit) Choose(from, to string, operators []string, priors map[string]float64, rng *rand.Rand) string {
	if len(operators) == 0 {
		return ""
	}
	weights := make([]float64, len(operators))
	for i, op := range operators {
		a := b.arms[key(from, to, op)]
		w := b.Baseline
		if a != nil {
			w += a.mean()
		}
		prior := 1.0
		if priors != nil {
			if p, ok := priors[op]; ok && p > 0 {
				prior = p
			}
		}
		weights[i] = w * prior
	}
	idx := randx.WeightedChoice(rng, weights)
	if idx < 0 {
		idx = randx.Intn(rng, len(operators))
	}

	return operators[idx]
}

// Reward records the outcome of having applied operator while transitioning
// from -> to this generation (§4.5 "reward-weighted sampling"); reward is
// typically the improvement in the last (fitness) objective tier, 0 or negative
// for a non-improving or reverted move.
func (b *Bandit) Reward(from, to, operator string, reward float64) {
	k := key(from, to, operator)
	a := b.arms[k]
	if a == nil {
		a = &arm{}
		b.arms[k] = a
	}
	a.pulls++
	a.reward += reward
}

package evolution_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/evolution"
)

func TestBandit_ChooseFavorsHigherReward(t *testing.T) {
	b := evolution.NewBandit(0.01)
	rng := rand.New(rand.NewSource(1))

	// Reward "good" heavily and "bad" negatively across many pulls so the
	// weighted draw should overwhelmingly favor "good".
	for i := 0; i < 50; i++ {
		b.Reward("explore", "explore", "good", 10)
		b.Reward("explore", "explore", "bad", -10)
	}

	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		chosen := b.Choose("explore", "explore", []string{"good", "bad"}, nil, rng)
		counts[chosen]++
	}
	require.Greater(t, counts["good"], counts["bad"])
}

func TestBandit_ChooseEmptyOperators(t *testing.T) {
	b := evolution.NewBandit(0.1)
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, "", b.Choose("a", "a", nil, nil, rng))
}

func TestBandit_PriorsScaleWeight(t *testing.T) {
	b := evolution.NewBandit(0.1)
	rng := rand.New(rand.NewSource(7))

	priors := map[string]float64{"favored": 100, "disfavored": 0.001}
	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		chosen := b.Choose("s", "s", []string{"favored", "disfavored"}, priors, rng)
		counts[chosen]++
	}
	require.Greater(t, counts["favored"], counts["disfavored"])
}

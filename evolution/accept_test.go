package evolution_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/evolution"
)

func TestGreedyAccept(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	incumbent := evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0)

	require.True(t, evolution.Greedy{}.Accept(evolution.NewIndividuum(nil, []float64{0, 0, 5}, 1), incumbent, 1, rng))
	require.False(t, evolution.Greedy{}.Accept(evolution.NewIndividuum(nil, []float64{0, 0, 15}, 1), incumbent, 1, rng))
	require.True(t, evolution.Greedy{}.Accept(evolution.NewIndividuum(nil, []float64{0, 0, 1}, 1), nil, 1, rng))
}

func TestSimulatedAnnealing_AlwaysAcceptsImprovement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sa := evolution.SimulatedAnnealing{MaxProb: 0.05, Generations: 100}
	incumbent := evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0)

	require.True(t, sa.Accept(evolution.NewIndividuum(nil, []float64{0, 0, 5}, 0), incumbent, 0, rng))
}

func TestSimulatedAnnealing_ConvergesTowardGreedyLateInRun(t *testing.T) {
	sa := evolution.SimulatedAnnealing{MaxProb: 0.01, Generations: 100}
	incumbent := evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0)
	worse := evolution.NewIndividuum(nil, []float64{0, 0, 20}, 99)

	rng := rand.New(rand.NewSource(1))
	accepted := 0
	const trials = 500
	for i := 0; i < trials; i++ {
		if sa.Accept(worse, incumbent, 99, rng) {
			accepted++
		}
	}
	// p(99) with MaxProb=0.01 over 100 generations is 0.01-exp(-0.99*ln 2),
	// about -0.49, so no worsening move is accepted.
	require.Less(t, accepted, trials/10)
}

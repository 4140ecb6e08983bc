package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/evolution"
)

func TestGreedyPopulation_SortedAndBounded(t *testing.T) {
	pop := evolution.NewGreedyPopulation(2)

	ok := pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 30}, 0))
	require.True(t, ok)
	ok = pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 10}, 1))
	require.True(t, ok)
	require.Equal(t, 2, pop.Len())
	require.Equal(t, 10.0, pop.Best().Values[2])

	// A third, worse individual is accepted then evicted immediately (it
	// is itself the worst member once inserted), so Add reports false.
	ok = pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 40}, 2))
	require.False(t, ok)
	require.Equal(t, 2, pop.Len())
	require.Equal(t, 10.0, pop.Best().Values[2])

	// A better individual displaces the current worst.
	ok = pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 5}, 3))
	require.True(t, ok)
	require.Equal(t, 5.0, pop.Best().Values[2])
	require.Equal(t, 2, pop.Len())
}

func TestGridPopulation_FillsThenPlantsAtBMU(t *testing.T) {
	pop := evolution.NewGridPopulation(4)
	require.Equal(t, 2, pop.Width)
	require.Equal(t, 2, pop.Height)

	for i := 0; i < 4; i++ {
		ok := pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, float64(i)}, i))
		require.True(t, ok)
	}
	require.Equal(t, 4, pop.Len())
	require.Equal(t, 0.0, pop.Best().Values[2])

	// A strictly better individual should displace some occupant (its own
	// BMU or one of that node's neighbours).
	ok := pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, -1}, 4))
	require.True(t, ok)
	require.Equal(t, -1.0, pop.Best().Values[2])
}

package evolution_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/evolution"
)

func TestMaxGeneration(t *testing.T) {
	m := evolution.MaxGeneration{Limit: 10}
	require.False(t, m.Done(nil, 9, time.Now()))
	require.True(t, m.Done(nil, 10, time.Now()))
}

func TestMaxTime(t *testing.T) {
	m := evolution.MaxTime{Limit: 10 * time.Millisecond}
	started := time.Now()
	require.False(t, m.Done(nil, 0, started))
	time.Sleep(15 * time.Millisecond)
	require.True(t, m.Done(nil, 0, started))
}

func TestGoalSatisfied(t *testing.T) {
	pop := evolution.NewGreedyPopulation(1)
	pop.Add(evolution.NewIndividuum(nil, []float64{0, 1, 5}, 0))

	g := evolution.GoalSatisfied{Satisfied: func(values []float64) bool {
		return values[0] == 0
	}}
	require.True(t, g.Done(pop, 0, time.Now()))

	g2 := evolution.GoalSatisfied{Satisfied: func(values []float64) bool {
		return values[0] > 0
	}}
	require.False(t, g2.Done(pop, 0, time.Now()))
}

func TestAny_StopsOnFirstSatisfied(t *testing.T) {
	any := evolution.Any{
		evolution.MaxGeneration{Limit: 1000},
		evolution.MaxTime{Limit: time.Nanosecond},
	}
	time.Sleep(time.Microsecond)
	require.True(t, any.Done(nil, 0, time.Now().Add(-time.Millisecond)))
}

func TestVariationCoefficient_RequiresMinSamples(t *testing.T) {
	v := evolution.VariationCoefficient{Threshold: 0.1, MinSamples: 5}
	pop := evolution.NewGreedyPopulation(10)
	pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0))
	require.False(t, v.Done(pop, 0, time.Now()))
}

func TestVariationCoefficient_ConvergedPopulation(t *testing.T) {
	v := evolution.VariationCoefficient{Threshold: 0.01, MinSamples: 2}
	pop := evolution.NewGreedyPopulation(10)
	pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0))
	pop.Add(evolution.NewIndividuum(nil, []float64{0, 0, 10.0001}, 1))
	require.True(t, v.Done(pop, 0, time.Now()))
}

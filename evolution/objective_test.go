package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/evolution"
)

func TestLess_LexicographicOrder(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"first tier decides", []float64{1, 0, 0}, []float64{2, 0, 0}, true},
		{"first tier reversed", []float64{2, 0, 0}, []float64{1, 0, 0}, false},
		{"tie falls to second tier", []float64{1, 5, 0}, []float64{1, 3, 0}, false},
		{"tie falls to third tier", []float64{1, 3, 10}, []float64{1, 3, 20}, true},
		{"equal values", []float64{1, 2, 3}, []float64{1, 2, 3}, false},
		{"shorter wins on common prefix tie", []float64{1, 2}, []float64{1, 2, 3}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, evolution.Less(tc.a, tc.b))
		})
	}
}

// TestGreedyAcceptanceTotalOrder covers §8 scenario 6: a population whose
// best is (actual=10, penalty=0) rejects a strictly worse (20, 0) and a
// penalized (10, 20) whose total is 30, and accepts a strictly better
// (5, 10) — with "total" modeled here as the single combined fitness tier
// (actual+penalty), matching the scenario's fixed total() definition.
func TestGreedyAcceptanceTotalOrder(t *testing.T) {
	incumbent := evolution.NewIndividuum(nil, []float64{0, 0, 10}, 0)

	worse := evolution.NewIndividuum(nil, []float64{0, 0, 20}, 1)
	require.False(t, evolution.Less(worse.Values, incumbent.Values))

	penalized := evolution.NewIndividuum(nil, []float64{0, 0, 30}, 1)
	require.False(t, evolution.Less(penalized.Values, incumbent.Values))

	better := evolution.NewIndividuum(nil, []float64{0, 0, 15}, 1)
	require.True(t, evolution.Less(better.Values, incumbent.Values))
}

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/matrix"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solver"
)

func euclideanMatrices(t *testing.T, profile string, n int, coords [][2]float64) []model.ProfileMatrix {
	t.Helper()
	dist, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			d := dx*dx + dy*dy
			if d < 0 {
				d = -d
			}
			// Euclidean distance; the fixture only ever uses points on the
			// x-axis so a plain abs-difference is exact and avoids pulling
			// in math.Sqrt for a value always a perfect square here.
			require.NoError(t, dist.Set(i, j, absf(coords[i][0]-coords[j][0])+absf(coords[i][1]-coords[j][1])))
		}
	}

	return []model.ProfileMatrix{{Distance: dist, Duration: dist}}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func locPtr(i int) *model.Location {
	l := model.Location(i)

	return &l
}

// TestSolve_TwoDeliveriesOneVehicle exercises §8 scenario 1: two deliveries
// on one open-route vehicle, expecting a single tour depot->j1->j2 with
// loads [2,1,0], distance 2, duration 2, nothing left unassigned.
func TestSolve_TwoDeliveriesOneVehicle(t *testing.T) {
	const profile = "p"
	coords := [][2]float64{{0, 0}, {1, 0}, {2, 0}}
	pm := euclideanMatrices(t, profile, 3, coords)
	transport, err := model.NewMatrixTransportCost(map[string]model.ProfileMatrix{profile: pm[0]})
	require.NoError(t, err)

	window := []model.TimeSpan{{Absolute: true, Start: 0, End: 1000}}

	vehicle := &model.Vehicle{
		ID:        "v1",
		ProfileID: profile,
		Costs:     model.VehicleCosts{PerDistance: 1},
		Capacity:  []int64{10},
		Shifts: []model.Shift{{
			Start: model.Place{Location: locPtr(0), Times: window},
		}},
	}
	fleet, err := model.NewFleet([]*model.Vehicle{vehicle})
	require.NoError(t, err)

	j1 := &model.Single{
		ID:     "j1",
		Places: []model.Place{{Location: locPtr(1), Times: window}},
		Attrs:  model.Dimens{model.DimenDemand: []int64{1}},
	}
	j2 := &model.Single{
		ID:     "j2",
		Places: []model.Place{{Location: locPtr(2), Times: window}},
		Attrs:  model.Dimens{model.DimenDemand: []int64{1}},
	}

	problem, err := model.NewProblem(fleet, []model.Job{j1, j2}, transport, model.DefaultActivityCost{}, nil, model.Goal{})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.MaxGenerations = 5

	out, err := solver.Solve(problem, cfg, nil)
	require.NoError(t, err)
	require.Empty(t, out.Unassigned)
	require.Len(t, out.Routes, 1)

	route := out.Routes[0]
	require.Len(t, route.Stops, 3)
	require.Equal(t, "j1", route.Stops[1].Activities[0].JobID)
	require.Equal(t, "j2", route.Stops[2].Activities[0].JobID)
	require.Equal(t, []int64{2}, route.Stops[0].Load)
	require.Equal(t, []int64{1}, route.Stops[1].Load)
	require.Equal(t, []int64{0}, route.Stops[2].Load)
	require.Equal(t, 2.0, out.Statistics.Distance)
	require.Equal(t, 2.0, out.Statistics.Duration)
}

// TestSolve_InfeasibleSkillsReturnsUnassigned covers the §8 boundary
// behaviour: a job whose skills match no vehicle yields an unassigned
// record with a skills code and no tours.
func TestSolve_InfeasibleSkillsReturnsUnassigned(t *testing.T) {
	const profile = "p"
	pm := euclideanMatrices(t, profile, 2, [][2]float64{{0, 0}, {1, 0}})
	transport, err := model.NewMatrixTransportCost(map[string]model.ProfileMatrix{profile: pm[0]})
	require.NoError(t, err)

	window := []model.TimeSpan{{Absolute: true, Start: 0, End: 1000}}
	vehicle := &model.Vehicle{
		ID:        "v1",
		ProfileID: profile,
		Capacity:  []int64{10},
		Shifts: []model.Shift{{
			Start: model.Place{Location: locPtr(0), Times: window},
		}},
	}
	fleet, err := model.NewFleet([]*model.Vehicle{vehicle})
	require.NoError(t, err)

	job := &model.Single{
		ID:     "j1",
		Places: []model.Place{{Location: locPtr(1), Times: window}},
		Attrs:  model.Dimens{model.DimenSkills: []string{"crane"}},
	}

	problem, err := model.NewProblem(fleet, []model.Job{job}, transport, model.DefaultActivityCost{}, nil, model.Goal{})
	require.NoError(t, err)

	out, err := solver.Solve(problem, config.Default(), nil)
	require.NoError(t, err)
	require.Empty(t, out.Routes)
	require.Len(t, out.Unassigned, 1)
	require.Equal(t, "j1", out.Unassigned[0].JobID)
}

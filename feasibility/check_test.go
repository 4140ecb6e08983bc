package feasibility_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/feasibility"
	"github.com/routeforge/vrp/model"
)

func vehicle(id string, capacity []int64, skills []string) *model.Vehicle {
	return &model.Vehicle{
		ID:       id,
		Capacity: capacity,
		Skills:   skills,
		Shifts:   []model.Shift{{Start: model.Place{}}},
	}
}

func job(id string, demand []int64, skills []string) *model.Single {
	attrs := model.NewDimens()
	if demand != nil {
		attrs[model.DimenDemand] = demand
	}
	if skills != nil {
		attrs[model.DimenSkills] = skills
	}

	return &model.Single{ID: id, Places: []model.Place{{}}, Attrs: attrs}
}

func TestCheck_FeasibleWithSufficientCapacity(t *testing.T) {
	fleet, err := model.NewFleet([]*model.Vehicle{vehicle("v1", []int64{10}, nil)})
	require.NoError(t, err)
	problem := &model.Problem{Fleet: fleet, Jobs: []model.Job{job("j1", []int64{4}, nil), job("j2", []int64{4}, nil)}}

	report, err := feasibility.Check(context.Background(), problem)
	require.NoError(t, err)
	require.True(t, report.Feasible)
	require.Empty(t, report.Unreachable)
	require.Equal(t, int64(8), report.TotalDemand)
}

func TestCheck_InfeasibleCapacity(t *testing.T) {
	fleet, err := model.NewFleet([]*model.Vehicle{vehicle("v1", []int64{3}, nil)})
	require.NoError(t, err)
	problem := &model.Problem{Fleet: fleet, Jobs: []model.Job{job("j1", []int64{4}, nil)}}

	report, err := feasibility.Check(context.Background(), problem)
	require.NoError(t, err)
	require.False(t, report.Feasible)
}

func TestCheck_UnreachableSkills(t *testing.T) {
	fleet, err := model.NewFleet([]*model.Vehicle{vehicle("v1", []int64{10}, []string{"van"})})
	require.NoError(t, err)
	problem := &model.Problem{Fleet: fleet, Jobs: []model.Job{job("j1", []int64{1}, []string{"crane"})}}

	report, err := feasibility.Check(context.Background(), problem)
	require.NoError(t, err)
	require.False(t, report.Feasible)
	require.Equal(t, []string{"j1"}, report.Unreachable)
}

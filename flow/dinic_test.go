package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/core"
	"github.com/routeforge/vrp/flow"
)

// buildBipartite mirrors the shape feasibility.Check constructs: a
// source, a sink, and a layer of vehicle/job vertices in between.
func buildBipartite() *core.Graph {
	g := core.NewMixedGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("__source__")
	_ = g.AddVertex("__sink__")
	_ = g.AddVertex("v:v1")
	_ = g.AddVertex("j:j1")
	_ = g.AddVertex("j:j2")
	_, _ = g.AddEdge("__source__", "v:v1", 10)
	_, _ = g.AddEdge("v:v1", "j:j1", 4)
	_, _ = g.AddEdge("v:v1", "j:j2", 4)
	_, _ = g.AddEdge("j:j1", "__sink__", 4)
	_, _ = g.AddEdge("j:j2", "__sink__", 4)

	return g
}

func TestDinic_SaturatesOnSufficientCapacity(t *testing.T) {
	g := buildBipartite()
	maxFlow, residual, err := flow.Dinic(g, "__source__", "__sink__", flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 8.0, maxFlow)
	require.NotNil(t, residual)
}

func TestDinic_BoundedByVehicleCapacity(t *testing.T) {
	g := core.NewMixedGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("__source__")
	_ = g.AddVertex("__sink__")
	_ = g.AddVertex("v:v1")
	_ = g.AddVertex("j:j1")
	_, _ = g.AddEdge("__source__", "v:v1", 3)
	_, _ = g.AddEdge("v:v1", "j:j1", 10)
	_, _ = g.AddEdge("j:j1", "__sink__", 10)

	maxFlow, _, err := flow.Dinic(g, "__source__", "__sink__", flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 3.0, maxFlow)
}

func TestDinic_MissingSourceOrSink(t *testing.T) {
	g := buildBipartite()
	_, _, err := flow.Dinic(g, "nope", "__sink__", flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrSourceNotFound)

	_, _, err = flow.Dinic(g, "__source__", "nope", flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
}

func TestDinic_RespectsCancelledContext(t *testing.T) {
	g := buildBipartite()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := flow.Dinic(g, "__source__", "__sink__", flow.FlowOptions{Ctx: ctx})
	require.Error(t, err)
}

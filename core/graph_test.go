package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrp/core"
)

func TestGraph_NearestNeighbourShape(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	require.NoError(t, g.AddVertex("job-1"))
	require.NoError(t, g.AddVertex("job-2"))
	_, err := g.AddEdge("job-1", "job-2", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("job-2", "job-1", 7)
	require.NoError(t, err)

	neighbours, err := g.Neighbors("job-1")
	require.NoError(t, err)
	require.Len(t, neighbours, 1)
	require.Equal(t, "job-2", neighbours[0].To)
	require.Equal(t, int64(7), neighbours[0].Weight)
}

func TestGraph_AddEdgeRejectsLoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err := g.AddEdge("v1", "v1", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("v1", "v2", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_UnweightedRejectsNonZeroWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("v1", "v2", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_NeighborsOfUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CloneEmptyPreservesVerticesAndFlagsOnly(t *testing.T) {
	g := core.NewMixedGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddVertex("__source__"))
	require.NoError(t, g.AddVertex("v:v1"))
	_, err := g.AddEdge("__source__", "v:v1", 5)
	require.NoError(t, err)

	clone := g.CloneEmpty()
	require.True(t, clone.HasVertex("__source__"))
	require.True(t, clone.HasVertex("v:v1"))

	neighbours, err := clone.Neighbors("__source__")
	require.NoError(t, err)
	require.Empty(t, neighbours)
}

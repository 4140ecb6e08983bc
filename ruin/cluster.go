package ruin

import (
	"container/heap"
	"math"
	"math/rand"

	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/state"
)

// ClusterRemoval removes a whole spatially-coherent cluster of jobs
// around a random seed (§4.4 "Cluster Removal"). The cluster is grown
// from the seed exactly as prim_kruskal.Prim grows a minimum spanning
// tree — a min-heap of candidate edges to not-yet-included jobs,
// repeatedly taking the cheapest — except growth stops once Size jobs
// have joined the cluster rather than continuing to a full spanning
// tree, which is what turns an MST grower into a bounded spatial
// cluster.
type ClusterRemoval struct {
	Size int
}

// clusterEdge is one candidate (already-in-cluster → candidate) edge,
// ordered by the heap on Weight.
type clusterEdge struct {
	to     string
	weight float64
}

type edgeHeap []clusterEdge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(clusterEdge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Ruin implements Operator.
func (c ClusterRemoval) Ruin(sc *state.SolutionContext, rc *Context, rng *rand.Rand) {
	jobs := placedJobs(sc)
	if len(jobs) == 0 || rc.Problem.JobIndex == nil {
		return
	}
	seed := jobs[randx.Intn(rng, len(jobs))]

	size := c.Size
	if size < 1 {
		size = 1
	}
	limit := budget(sc, rc)
	if size > limit {
		size = limit
	}

	inCluster := map[string]struct{}{seed: {}}
	cluster := []string{seed}

	h := &edgeHeap{}
	heap.Init(h)
	pushNeighbours(h, rc, seed, inCluster)

	for h.Len() > 0 && len(cluster) < size {
		e := heap.Pop(h).(clusterEdge)
		if _, ok := inCluster[e.to]; ok {
			continue
		}
		inCluster[e.to] = struct{}{}
		cluster = append(cluster, e.to)
		pushNeighbours(h, rc, e.to, inCluster)
	}

	for _, id := range cluster {
		removeJob(sc, rc, id)
	}
}

func pushNeighbours(h *edgeHeap, rc *Context, jobID string, inCluster map[string]struct{}) {
	for _, nb := range rc.Problem.JobIndex.Neighbors(rc.Profile, jobID, 0) {
		if _, ok := inCluster[nb]; ok {
			continue
		}
		heap.Push(h, clusterEdge{to: nb, weight: weightOf(rc, jobID, nb)})
	}
}

// weightOf looks up the precomputed proximity weight between two jobs by
// walking the JobIndex's nearest-neighbour order and approximating rank
// as distance (the index stores order, not raw distance, so the cluster
// grower ranks by neighbour rank rather than absolute distance — jobs
// ordered by JobIndex are already distance-sorted, so this preserves the
// "cheapest edge first" property Prim's growth relies on).
func weightOf(rc *Context, from, to string) float64 {
	neighbours := rc.Problem.JobIndex.Neighbors(rc.Profile, from, 0)
	for rank, id := range neighbours {
		if id == to {
			return float64(rank)
		}
	}

	return math.Inf(1)
}

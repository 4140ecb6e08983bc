package model

import (
	"sort"

	"github.com/routeforge/vrp/core"
)

// JobIndex answers "nearest jobs to X under profile P" queries, backing
// ruin.Neighbour, ruin.AdjustedStringRemoval (Jobs::neighbors, §4.4) and
// insertion.NearestNeighborSelector (§13). It is built once per Problem
// from the profile's TransportCost and never mutated afterward.
//
// Storage is a teacher-style core.Graph per profile: one vertex per job ID,
// one weighted edge per (job, neighbour) pair, weight = distance. A
// core.Graph gives us the same thread-safe, locked adjacency-list
// structure the teacher's algorithms package already traverses (§9 "Shared
// Arc-of-Single across routes" note applies equally here: jobs are
// referenced by ID, never by pointer, so the index is safe to share by
// reference across every individual in the population).
type JobIndex struct {
	// graphs[profile] holds a core.Graph whose vertices are job IDs and
	// whose edge weights are the distance, truncated to int64, between their primary
	// locations under that profile.
	graphs map[string]*core.Graph

	// sorted[profile][jobID] is jobID's neighbours, nearest-first; derived
	// once from graphs at Build time so ruin/insertion never pay
	// traversal + sort cost in the hot loop.
	sorted map[string]map[string][]string
}

// jobLocation returns the Location of job's first Single's first Place, or
// (0, false) if it has none (e.g. a job with only unlocated breaks).
func jobLocation(j Job) (Location, bool) {
	for _, s := range j.Tasks() {
		for _, p := range s.Places {
			if p.Location != nil {
				return *p.Location, true
			}
		}
	}

	return 0, false
}

// BuildJobIndex constructs a JobIndex over jobs for every profile named in
// profiles, using cost to compute pairwise distances. Jobs without a
// resolvable location are omitted (they have no spatial neighbours; breaks
// and similar jobs are looked up by ID directly instead).
func BuildJobIndex(jobs []Job, profiles []string, cost TransportCost) *JobIndex {
	idx := &JobIndex{
		graphs: make(map[string]*core.Graph, len(profiles)),
		sorted: make(map[string]map[string][]string, len(profiles)),
	}

	located := make([]Job, 0, len(jobs))
	locs := make(map[string]Location, len(jobs))
	for _, j := range jobs {
		if loc, ok := jobLocation(j); ok {
			located = append(located, j)
			locs[j.JobID()] = loc
		}
	}

	for _, profile := range profiles {
		g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
		for _, j := range located {
			_ = g.AddVertex(j.JobID())
		}
		for _, a := range located {
			for _, b := range located {
				if a.JobID() == b.JobID() {
					continue
				}
				d := cost.Distance(profile, locs[a.JobID()], locs[b.JobID()])
				_, _ = g.AddEdge(a.JobID(), b.JobID(), int64(d))
			}
		}
		idx.graphs[profile] = g
		idx.sorted[profile] = sortNeighbours(g, located)
	}

	return idx
}

// sortNeighbours precomputes, for every vertex, its out-neighbours ordered
// by ascending edge weight (nearest first). Ties broken by neighbour ID for
// determinism (§5 ordering guarantees).
func sortNeighbours(g *core.Graph, jobs []Job) map[string][]string {
	out := make(map[string][]string, len(jobs))
	for _, j := range jobs {
		id := j.JobID()
		edges, err := g.Neighbors(id)
		if err != nil {
			out[id] = nil
			continue
		}
		sort.Slice(edges, func(i, k int) bool {
			if edges[i].Weight != edges[k].Weight {
				return edges[i].Weight < edges[k].Weight
			}

			return edges[i].To < edges[k].To
		})
		ids := make([]string, len(edges))
		for i, e := range edges {
			ids[i] = e.To
		}
		out[id] = ids
	}

	return out
}

// Neighbors returns up to limit of jobID's nearest neighbours under
// profile, nearest first. Returns nil if jobID has no spatial location or
// profile is unknown.
func (idx *JobIndex) Neighbors(profile, jobID string, limit int) []string {
	byJob, ok := idx.sorted[profile]
	if !ok {
		return nil
	}
	all, ok := byJob[jobID]
	if !ok {
		return nil
	}
	if limit <= 0 || limit >= len(all) {
		return all
	}

	return all[:limit]
}

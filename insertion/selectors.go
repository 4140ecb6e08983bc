package insertion

import (
	"math/rand"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/randx"
	"github.com/routeforge/vrp/state"
)

// AllSelector returns the entire Required pool every round, in the order
// SolutionContext holds it — the baseline "all" selector of §4.3 step 1.
type AllSelector struct{}

// Select implements JobSelector.
func (AllSelector) Select(sc *state.SolutionContext, rng *rand.Rand) []model.Job {
	out := make([]model.Job, len(sc.Required))
	copy(out, sc.Required)

	return out
}

// RandomSelector returns a random subset of Required, sized by Fraction
// (0 < Fraction <= 1) of the pool, at least one job.
type RandomSelector struct {
	Fraction float64
}

// Select implements JobSelector.
func (s RandomSelector) Select(sc *state.SolutionContext, rng *rand.Rand) []model.Job {
	n := len(sc.Required)
	if n == 0 {
		return nil
	}
	frac := s.Fraction
	if frac <= 0 || frac > 1 {
		frac = 1
	}
	k := int(float64(n) * frac)
	if k < 1 {
		k = 1
	}
	perm := randx.PermRange(n, rng)
	out := make([]model.Job, k)
	for i := 0; i < k; i++ {
		out[i] = sc.Required[perm[i]]
	}

	return out
}

// GapsSelector thins Required to every Nth job before delegating to the
// chosen reducer, trading quality for speed on very large plans (§13,
// "recreate-with-gaps").
type GapsSelector struct {
	N int
}

// Select implements JobSelector.
func (s GapsSelector) Select(sc *state.SolutionContext, rng *rand.Rand) []model.Job {
	n := s.N
	if n < 1 {
		n = 1
	}
	var out []model.Job
	for i, job := range sc.Required {
		if i%n == 0 {
			out = append(out, job)
		}
	}

	return out
}

// NearestNeighborSelector greedily walks the spatial neighbours of the
// last-inserted job first, falling back to the full Required pool once
// exhausted (§13, "recreate-with-nearest-neighbor").
type NearestNeighborSelector struct {
	Index      *model.JobIndex
	Profile    string
	lastPlaced string
}

// Select implements JobSelector.
func (s *NearestNeighborSelector) Select(sc *state.SolutionContext, rng *rand.Rand) []model.Job {
	if s.Index == nil || s.lastPlaced == "" {
		return AllSelector{}.Select(sc, rng)
	}
	neighbourIDs := s.Index.Neighbors(s.Profile, s.lastPlaced, 0)
	required := make(map[string]model.Job, len(sc.Required))
	for _, j := range sc.Required {
		required[j.JobID()] = j
	}

	var out []model.Job
	seen := make(map[string]struct{}, len(neighbourIDs))
	for _, id := range neighbourIDs {
		if job, ok := required[id]; ok {
			out = append(out, job)
			seen[id] = struct{}{}
		}
	}
	for _, j := range sc.Required {
		if _, ok := seen[j.JobID()]; !ok {
			out = append(out, j)
		}
	}

	return out
}

// Notify records jobID as the most recently placed job, so the next
// Select call walks outward from it. The Engine calls this after every
// accepted insertion.
func (s *NearestNeighborSelector) Notify(jobID string) { s.lastPlaced = jobID }

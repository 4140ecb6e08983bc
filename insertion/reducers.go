package insertion

import (
	"math/rand"
	"sort"

	"github.com/routeforge/vrp/randx"
)

// sortedJobIDs returns perJob's keys in deterministic order (§5 ordering
// guarantees: reductions must not depend on map iteration order).
func sortedJobIDs(perJob map[string][]Candidate) []string {
	ids := make([]string, 0, len(perJob))
	for id, cands := range perJob {
		if len(cands) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// BestReducer implements cheapest insertion: the lowest-cost candidate
// across every job in perJob wins (§4.3 "Best").
type BestReducer struct{}

// Reduce implements JobMapReducer.
func (BestReducer) Reduce(perJob map[string][]Candidate, rng *rand.Rand) (Candidate, bool) {
	var best Candidate
	found := false
	for _, id := range sortedJobIDs(perJob) {
		c := perJob[id][0]
		if !found || less(c, best) {
			best = c
			found = true
		}
	}

	return best, found
}

// RegretKReducer ranks each job's best vs. its K-th best alternative and
// picks the job with the largest "regret" gap — the job most costly to
// defer (§4.3 "Regret-k"). A job with fewer than K+1 feasible positions is
// treated as maximally urgent (infinite regret), so it wins over any job
// with a real alternative.
type RegretKReducer struct {
	K int
}

// Reduce implements JobMapReducer.
func (r RegretKReducer) Reduce(perJob map[string][]Candidate, rng *rand.Rand) (Candidate, bool) {
	k := r.K
	if k < 1 {
		k = 1
	}

	var chosen Candidate
	found := false
	bestRegret := -1.0
	forced := false

	for _, id := range sortedJobIDs(perJob) {
		cands := perJob[id]
		best := cands[0]
		var regret float64
		isForced := false
		if k < len(cands) {
			regret = cands[k].Cost - best.Cost
		} else {
			isForced = true
		}

		switch {
		case isForced && !forced:
			chosen, found, forced, bestRegret = best, true, true, regret
		case isForced && forced:
			if less(best, chosen) {
				chosen = best
			}
		case !isForced && !forced:
			if !found || regret > bestRegret || (regret == bestRegret && less(best, chosen)) {
				chosen, found, bestRegret = best, true, regret
			}
		}
	}

	return chosen, found
}

// SkipBestReducer picks, for each job, the k-th best position for k drawn
// uniformly from [Start, End], then runs Best across those picks (§4.3
// "SkipBest(start..=end)").
type SkipBestReducer struct {
	Start, End int
}

// Reduce implements JobMapReducer.
func (r SkipBestReducer) Reduce(perJob map[string][]Candidate, rng *rand.Rand) (Candidate, bool) {
	lo, hi := r.Start, r.End
	if hi < lo {
		lo, hi = hi, lo
	}

	var best Candidate
	found := false
	for _, id := range sortedJobIDs(perJob) {
		cands := perJob[id]
		k := randx.UniformInt(rng, lo, hi)
		if k >= len(cands) {
			k = len(cands) - 1
		}
		if k < 0 {
			k = 0
		}
		c := cands[k]
		if !found || less(c, best) {
			best = c
			found = true
		}
	}

	return best, found
}

// BlinksReducer discards each job's candidate positions independently
// with probability Probability before picking the survivors' best,
// introducing controlled noise into cheapest insertion (§4.3 "Blinks").
// At least the job's own best candidate is always kept as a fallback, so
// a job is never spuriously skipped entirely.
type BlinksReducer struct {
	Probability float64
}

// Reduce implements JobMapReducer.
func (r BlinksReducer) Reduce(perJob map[string][]Candidate, rng *rand.Rand) (Candidate, bool) {
	var best Candidate
	found := false
	for _, id := range sortedJobIDs(perJob) {
		cands := perJob[id]
		survivor := cands[0]
		for _, c := range cands {
			if rng.Float64() < r.Probability {
				continue
			}
			if less(c, survivor) {
				survivor = c
			}
		}
		if !found || less(survivor, best) {
			best = survivor
			found = true
		}
	}

	return best, found
}

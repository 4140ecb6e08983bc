// Package localsearch implements intra-route polish moves applied as the
// "local_search" mutation kind (§6 configuration surface
// "mutation: tree of {composite, local_search, ruin_recreate} nodes").
// Unlike ruin+recreate, these moves never touch required/ignored pools:
// they only reorder activities already placed in one route, accepting a
// move only if it is both cheaper and still feasible under the
// constraint pipeline.
package localsearch

import (
	"math"

	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// TwoOpt performs deterministic first-improvement 2-opt over rc's tour:
// classic edge-pair reversal on the segment [i..k] of non-terminal
// activities, accepted when it strictly reduces total travel distance
// and the resulting tour remains feasible under pipeline (§4.2 contract;
// adapted from the teacher's tsp.TwoOpt symmetric case — here the
// "closed cycle" assumption is relaxed to an open-or-closed tour with
// fixed terminals, and feasibility is re-checked via the constraint
// pipeline instead of assumed from a pure distance matrix).
//
// Complexity: O(n^2) candidate scans per pass; one O(n) state rebuild per
// accepted move.
func TwoOpt(rc *state.RouteContext, pipeline *constraint.Pipeline) bool {
	tour := rc.Route.Tour
	profile := rc.Route.Actor.Vehicle.ProfileID
	improvedAny := false

	for {
		n := tour.Len()
		lo, hi := 1, n-1
		if tour.HasEnd() {
			hi = n - 2
		}
		if hi-lo < 1 {
			return improvedAny
		}

		improved := false
		for i := lo; i <= hi-1; i++ {
			for k := i + 1; k <= hi; k++ {
				a, b := tour.At(i-1), tour.At(i)
				c, d := tour.At(k), tour.At(k+1)

				locA, okA := locOf(a)
				locB, okB := locOf(b)
				locC, okC := locOf(c)
				locD, okD := locOf(d)
				if !okA || !okB || !okC || !okD {
					continue
				}

				wab := pipeline.Transport.Distance(profile, locA, locB)
				wcd := pipeline.Transport.Distance(profile, locC, locD)
				wac := pipeline.Transport.Distance(profile, locA, locC)
				wbd := pipeline.Transport.Distance(profile, locB, locD)
				if math.IsInf(wac, 1) || math.IsInf(wbd, 1) {
					continue
				}

				delta := (wac + wbd) - (wab + wcd)
				if delta >= -1e-9 {
					continue
				}

				reverseSegment(tour, i, k)
				pipeline.AcceptRouteState(rc)
				if feasible(rc) {
					improved = true
					improvedAny = true

					break
				}
				reverseSegment(tour, i, k)
				pipeline.AcceptRouteState(rc)
			}
			if improved {
				break
			}
		}
		if !improved {
			return improvedAny
		}
	}
}

func locOf(a *solution.Activity) (model.Location, bool) {
	if a == nil || a.Place.Location == nil {
		return 0, false
	}

	return *a.Place.Location, true
}

// reverseSegment reverses tour activities at indices [i..k], inclusive.
func reverseSegment(tour *solution.Tour, i, k int) {
	for i < k {
		ai, ak := tour.At(i), tour.At(k)
		replaceAt(tour, i, ak)
		replaceAt(tour, k, ai)
		i++
		k--
	}
}

// replaceAt swaps the activity at pos without touching neighbours; Tour
// exposes no direct setter, so this removes and reinserts at the same
// index (O(n) but only called on accepted/speculative moves, never in
// the hot scan itself).
func replaceAt(tour *solution.Tour, pos int, act *solution.Activity) {
	tour.RemoveAt(pos)
	tour.Insert(pos, act)
}

// feasible reports whether every non-terminal activity's arrival still
// respects its own time window — the cheap, sufficient check after a
// pure reversal (capacity is unaffected by reordering delivery-only
// demand within a reload interval only when sums do not change, which a
// reversal never does, so capacity is skipped here).
func feasible(rc *state.RouteContext) bool {
	tour := rc.Route.Tour
	for i := 0; i < tour.Len(); i++ {
		a := tour.At(i)
		if a.Schedule.Arrival > a.Place.Window.End+1e-9 {
			return false
		}
	}

	return true
}

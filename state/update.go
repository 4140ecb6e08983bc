package state

import (
	"math"

	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
)

// Update recomputes every canonical RouteState slot for rc's current tour,
// under the given profile-indexed transport/activity costs. This is the
// state package's accept_route_state (§4.2 State contract): callers run
// it once per touched route, after every accepted tour mutation.
//
// Algorithm (§4.1): a forward pass computes arrival/departure and running
// distance/duration; a backward pass computes latest-arrival; capacity is
// computed per reload interval, forward for current+max_past, backward
// for max_future.
//
// Complexity: O(tour length).
func Update(rc *RouteContext, profile string, transport model.TransportCost, activity model.ActivityCost) {
	tour := rc.Route.Tour
	n := tour.Len()
	rc.State.Resize(n)
	if n == 0 {
		return
	}

	updateSchedule(rc, tour, profile, transport, activity)
	updateLatestArrival(rc, tour, profile, transport)
	updateCapacity(rc, tour)
}

func locOf(a *solution.Activity) (model.Location, bool) {
	if a.Place.Location == nil {
		return 0, false
	}

	return *a.Place.Location, true
}

func updateSchedule(rc *RouteContext, tour *solution.Tour, profile string, transport model.TransportCost, activity model.ActivityCost) {
	var totalDistance, totalDuration float64

	first := tour.At(0)
	first.Schedule.Arrival = first.Place.Window.Start
	first.Schedule.Departure = first.Schedule.Arrival + first.Place.Duration

	for i := 1; i < tour.Len(); i++ {
		prev := tour.At(i - 1)
		cur := tour.At(i)

		var travelDist, travelDur float64
		prevLoc, prevOK := locOf(prev)
		curLoc, curOK := locOf(cur)
		if prevOK && curOK {
			travelDist = transport.Distance(profile, prevLoc, curLoc)
			travelDur = transport.Duration(profile, prevLoc, curLoc)
		}

		readyAt := prev.Schedule.Departure + travelDur
		arrival := math.Max(readyAt, cur.Place.Window.Start)
		cur.Schedule.Arrival = arrival
		cur.Schedule.Departure = arrival + cur.Place.Duration

		waitTime := arrival - readyAt
		if waitTime < 0 {
			waitTime = 0
		}
		_ = activity // ActivityCost is consumed by the Objective, not state; reserved for a future per-activity cost cache.

		totalDistance += travelDist
		totalDuration += travelDur + cur.Place.Duration + waitTime
	}

	rc.State.SetRouteValue(KeyTotalDistance, totalDistance)
	rc.State.SetRouteValue(KeyTotalDuration, totalDuration)

	// Waiting time per activity: idle time accumulated from this activity
	// to the route's end.
	var runningWait float64
	for i := tour.Len() - 1; i >= 0; i-- {
		if i < tour.Len()-1 {
			next := tour.At(i + 1)
			cur := tour.At(i)
			gap := next.Schedule.Arrival - cur.Schedule.Departure
			var travelDur float64
			if loc, ok := locOf(cur); ok {
				if nloc, ok2 := locOf(next); ok2 {
					travelDur = transport.Duration(profile, loc, nloc)
				}
			}
			idle := gap - travelDur
			if idle < 0 {
				idle = 0
			}
			runningWait += idle
		}
		rc.State.SetActivityValue(i, KeyWaitingTime, runningWait)
	}
}

func updateLatestArrival(rc *RouteContext, tour *solution.Tour, profile string, transport model.TransportCost) {
	n := tour.Len()
	last := tour.At(n - 1)
	latest := last.Place.Window.End
	rc.State.SetActivityValue(n-1, KeyLatestArrival, latest)

	for i := n - 2; i >= 0; i-- {
		cur := tour.At(i)
		next := tour.At(i + 1)
		var travelDur float64
		if loc, ok := locOf(cur); ok {
			if nloc, ok2 := locOf(next); ok2 {
				travelDur = transport.Duration(profile, loc, nloc)
			}
		}
		nextLatest, _ := rc.State.ActivityFloat(i+1, KeyLatestArrival)
		candidate := nextLatest - travelDur - cur.Place.Duration
		latest = math.Min(candidate, cur.Place.Window.End)
		rc.State.SetActivityValue(i, KeyLatestArrival, latest)
	}
}

// demandDelta returns the signed per-dimension load change an activity
// contributes once visited, under the simplified static-delivery model:
// jobs tagged "pickup" add load; every other job (default: delivery)
// subtracts load that was assumed loaded at the interval head (see
// intervalHeadLoad). Jobs with no demand contribute a zero delta.
func demandDelta(a *solution.Activity) []int64 {
	if a.Kind != solution.KindJob || a.Job == nil {
		return nil
	}
	demand := a.Job.Attrs.Demand()
	if demand == nil {
		return nil
	}
	jobType, _ := a.Job.Attrs.GetString(model.DimenJobType)
	if jobType == "pickup" {
		return demand
	}
	out := make([]int64, len(demand))
	for i, d := range demand {
		out[i] = -d
	}

	return out
}

func intervalHeadLoad(tour *solution.Tour, iv Interval) []int64 {
	var sum []int64
	for i := iv.StartIndex; i <= iv.EndIndex; i++ {
		a := tour.At(i)
		if a.Kind != solution.KindJob || a.Job == nil {
			continue
		}
		jobType, _ := a.Job.Attrs.GetString(model.DimenJobType)
		if jobType == "pickup" {
			continue
		}
		demand := a.Job.Attrs.Demand()
		if demand == nil {
			continue
		}
		if sum == nil {
			sum = make([]int64, len(demand))
		}
		sum = addVec(sum, demand)
	}

	return sum
}

func addVec(a, b []int64) []int64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		if i < len(a) {
			out[i] += a[i]
		}
		if i < len(b) {
			out[i] += b[i]
		}
	}

	return out
}

func maxVec(a, b []int64) []int64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av > bv {
			out[i] = av
		} else {
			out[i] = bv
		}
	}

	return out
}

// computeIntervals partitions the tour into reload intervals: the
// terminal-to-terminal span broken at every KindReload activity (GLOSSARY
// "Reload interval").
func computeIntervals(tour *solution.Tour) []Interval {
	var intervals []Interval
	start := 0
	for i := 0; i < tour.Len(); i++ {
		if tour.At(i).Kind == solution.KindReload {
			intervals = append(intervals, Interval{StartIndex: start, EndIndex: i})
			start = i
		}
	}
	intervals = append(intervals, Interval{StartIndex: start, EndIndex: tour.Len() - 1})

	return intervals
}

func updateCapacity(rc *RouteContext, tour *solution.Tour) {
	intervals := computeIntervals(tour)
	rc.State.SetRouteValue(KeyReloadIntervals, intervals)

	for _, iv := range intervals {
		head := intervalHeadLoad(tour, iv)
		current := head
		rc.State.SetActivityValue(iv.StartIndex, KeyCurrentCapacity, current)
		for i := iv.StartIndex + 1; i <= iv.EndIndex; i++ {
			current = addVec(current, demandDelta(tour.At(i)))
			rc.State.SetActivityValue(i, KeyCurrentCapacity, current)
		}

		var runningMax []int64
		for i := iv.StartIndex; i <= iv.EndIndex; i++ {
			c := rc.State.ActivityCapacity(i, KeyCurrentCapacity)
			runningMax = maxVec(runningMax, c)
			rc.State.SetActivityValue(i, KeyMaxPastCapacity, runningMax)
		}

		var runningFuture []int64
		for i := iv.EndIndex; i >= iv.StartIndex; i-- {
			c := rc.State.ActivityCapacity(i, KeyCurrentCapacity)
			runningFuture = maxVec(runningFuture, c)
			rc.State.SetActivityValue(i, KeyMaxFutureCapacity, runningFuture)
		}
	}
}

// Package state implements the per-route memo described in SPEC_FULL §4.1
// (the Route State Store): arrival/departure schedule, running capacity,
// reload intervals and other order-dependent attributes a constraint
// feature needs to answer O(1) hard/soft queries, plus the RouteContext/
// SolutionContext aggregates built on top of it.
package state

// Key identifies one state slot. The canonical keys below cover the
// standard feature set (§4.1); Key is otherwise an open, string-valued
// namespace so experimental features can carry their own slots without a
// central registry (§9 "State key extensibility" — prefer a closed enum
// for the hot keys, a small open namespace for the rest; Go has no
// compact-array-by-int win here over a map lookup, so both live in one
// string space for simplicity).
type Key string

const (
	// KeyLatestArrival is per-activity: the latest time the activity may
	// start without breaking a later time window (backward pass).
	KeyLatestArrival Key = "latest_arrival"

	// KeyWaitingTime is per-activity: the sum of idle time from this
	// activity to the route's end.
	KeyWaitingTime Key = "waiting_time"

	// KeyCurrentCapacity is per-activity: load just after departure.
	KeyCurrentCapacity Key = "current_capacity"

	// KeyMaxPastCapacity is per-activity: the supremum of load from the
	// route's start up to and including this activity.
	KeyMaxPastCapacity Key = "max_past_capacity"

	// KeyMaxFutureCapacity is per-activity: the supremum of load from
	// this activity to the route's end.
	KeyMaxFutureCapacity Key = "max_future_capacity"

	// KeyTotalDistance is per-route: the running distance total.
	KeyTotalDistance Key = "total_distance"

	// KeyTotalDuration is per-route: the running duration total.
	KeyTotalDuration Key = "total_duration"

	// KeyReloadIntervals is per-route: []Interval partitioning the tour
	// by reload activity (§4.1, GLOSSARY "Reload interval").
	KeyReloadIntervals Key = "reload_intervals"
)

// Interval is a maximal contiguous sub-sequence [StartIndex, EndIndex]
// (tour indices, inclusive) between reload activities or terminals.
type Interval struct {
	StartIndex int
	EndIndex   int
}

package model

// Location indexes a row/column in a profile's routing matrix. The core
// never interprets coordinates directly — geocoding and matrix ingestion
// are an external collaborator's responsibility (§1 Out of scope); Location
// is the stable integer handle the core passes to TransportCost.
type Location int

// TimeWindow is an absolute [Start, End] interval, in seconds from the
// planning horizon's epoch.
type TimeWindow struct {
	Start float64
	End   float64
}

// Contains reports whether t lies within the window, inclusive.
func (w TimeWindow) Contains(t float64) bool {
	return t >= w.Start && t <= w.End
}

// Validate reports ErrInvalidTimeWindow if End < Start.
func (w TimeWindow) Validate() error {
	if w.End < w.Start {
		return ErrInvalidTimeWindow
	}

	return nil
}

// TimeSpan is either an absolute TimeWindow or a shift-relative offset pair
// (measured from the vehicle shift's start time). Place.Times mixes both
// kinds freely per §3.
type TimeSpan struct {
	// Absolute, when true, means Start/End are absolute timestamps.
	// Otherwise they are offsets added to the assigned shift's start time.
	Absolute bool
	Start    float64
	End      float64
}

// Resolve returns the absolute TimeWindow this span represents given the
// shift start time it is relative to (ignored when Absolute is true).
func (s TimeSpan) Resolve(shiftStart float64) TimeWindow {
	if s.Absolute {
		return TimeWindow{Start: s.Start, End: s.End}
	}

	return TimeWindow{Start: shiftStart + s.Start, End: shiftStart + s.End}
}

// Place is a location an activity may be served at: an optional Location
// (nil/omitted for some break variants), a fixed service Duration, and the
// list of time spans during which service may start.
type Place struct {
	Location *Location
	Duration float64
	Times    []TimeSpan
}

// ResolvedPlace is a Place with its Times collapsed against a concrete
// shift start, ready for scheduling. Built once per insertion candidate by
// the insertion engine, and for tour terminals by solution.NewRoute.
type ResolvedPlace struct {
	Location *Location
	Duration float64
	Window   TimeWindow
}

// Resolve picks, among p.Times resolved relative to shiftStart, the window
// with the earliest Start (the first such span on ties), returning
// ok=false if p has no
// time spans (meaning: unconstrained, the zero TimeWindow is infeasible to
// assume, callers must treat ok=false as "any time").
func (p Place) Resolve(shiftStart float64) (TimeWindow, bool) {
	if len(p.Times) == 0 {
		return TimeWindow{}, false
	}
	best := p.Times[0].Resolve(shiftStart)
	for _, span := range p.Times[1:] {
		w := span.Resolve(shiftStart)
		if w.Start < best.Start {
			best = w
		}
	}

	return best, true
}

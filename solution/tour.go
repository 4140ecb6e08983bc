package solution

// Tour is the ordered sequence of Activities one Route executes. Invariant
// (§3): activities[0] is always the Start; if an End is present it is the
// last element; every interior activity is non-terminal.
type Tour struct {
	activities []*Activity
	hasEnd     bool
}

// NewTour builds a Tour from a mandatory start activity and an optional
// end activity.
func NewTour(start *Activity, end *Activity) *Tour {
	t := &Tour{activities: []*Activity{start}}
	if end != nil {
		t.activities = append(t.activities, end)
		t.hasEnd = true
	}

	return t
}

// Activities returns the tour's activities in order. Callers must not
// mutate the returned slice's backing array directly; use Insert/RemoveAt.
func (t *Tour) Activities() []*Activity { return t.activities }

// Len returns the total activity count, including terminals.
func (t *Tour) Len() int { return len(t.activities) }

// JobCount returns the count of KindJob activities (breaks/reloads do not
// count as plan jobs for removal-fraction/savings computations, §4.4).
func (t *Tour) JobCount() int {
	n := 0
	for _, a := range t.activities {
		if a.Kind == KindJob {
			n++
		}
	}

	return n
}

// HasEnd reports whether this tour has a terminal End activity (a closed
// route) as opposed to an open one.
func (t *Tour) HasEnd() bool { return t.hasEnd }

// At returns the activity at index i, or nil if out of range.
func (t *Tour) At(i int) *Activity {
	if i < 0 || i >= len(t.activities) {
		return nil
	}

	return t.activities[i]
}

// InsertablePositions returns the valid splice indices for a new
// non-terminal activity: 1 (immediately after the Start — see Insert)
// through len(activities)-1 if HasEnd, else len(activities). Position 0
// itself (before the Start) is never valid and is excluded (§4.3 "Terminal
// activity handling").
func (t *Tour) InsertablePositions() []int {
	lo := 1
	hi := len(t.activities)
	if t.hasEnd {
		hi--
	}
	if hi < lo {
		return nil
	}
	positions := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		positions = append(positions, i)
	}

	return positions
}

// Insert splices act into the tour at position pos (an index returned by
// InsertablePositions). It does not update any RouteState; callers must
// run the state package's acceptance passes afterward (§4.1 contract).
func (t *Tour) Insert(pos int, act *Activity) {
	t.activities = append(t.activities, nil)
	copy(t.activities[pos+1:], t.activities[pos:])
	t.activities[pos] = act
}

// RemoveAt removes and returns the activity at index pos. Removing a
// terminal activity is a caller bug; RemoveAt does not guard against it.
func (t *Tour) RemoveAt(pos int) *Activity {
	act := t.activities[pos]
	t.activities = append(t.activities[:pos], t.activities[pos+1:]...)

	return act
}

// IndexOfJob returns the tour index of the activity realizing jobID, or
// (-1, false).
func (t *Tour) IndexOfJob(jobID string) (int, bool) {
	for i, a := range t.activities {
		if a.Kind == KindJob && a.JobID() == jobID {
			return i, true
		}
	}

	return -1, false
}

// Clone returns a deep copy of the tour: a new activities slice of cloned
// Activities (Job references shared per §9).
func (t *Tour) Clone() *Tour {
	cp := &Tour{
		activities: make([]*Activity, len(t.activities)),
		hasEnd:     t.hasEnd,
	}
	for i, a := range t.activities {
		cp.activities[i] = a.Clone()
	}

	return cp
}

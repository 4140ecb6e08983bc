package model

// Job is the tagged variant of §3: a Single (one atomic visit) or a Multi
// (an ordered sequence of Singles all served by the same route). Both
// implement Job so the rest of the core can treat them uniformly where the
// distinction does not matter (ID, Dimens, constituent Singles) and switch
// on IsMulti where it does (insertion search, see insertion.Engine).
type Job interface {
	// JobID returns the stable identifier used in required/ignored/locked
	// pools, unassigned reasons, and Lock references.
	JobID() string

	// Dimens returns the job-level attribute bag (priority, skills, group,
	// compatibility; §3).
	Dimens() Dimens

	// IsMulti reports whether this Job is a Multi.
	IsMulti() bool

	// Tasks returns the ordered Singles that must be realized together.
	// For a Single job, it returns a one-element slice containing itself.
	Tasks() []*Single
}

// Single is one atomic job: a set of candidate Places (the job may be
// served at any one of them) plus its own Dimens.
type Single struct {
	ID     string
	Places []Place
	Attrs  Dimens
}

// JobID implements Job.
func (s *Single) JobID() string { return s.ID }

// Dimens implements Job.
func (s *Single) Dimens() Dimens { return s.Attrs }

// IsMulti implements Job.
func (s *Single) IsMulti() bool { return false }

// Tasks implements Job.
func (s *Single) Tasks() []*Single { return []*Single{s} }

// Validate checks the Single-level invariants from §3: a non-empty ID and
// at least one Place.
func (s *Single) Validate() error {
	if s.ID == "" {
		return ErrEmptyJobID
	}
	if len(s.Places) == 0 {
		return ErrNoPlaces
	}

	return nil
}

// Multi is a job with an ordered sequence of sub-tasks that must all be
// served by the same route, in order (pickup-then-delivery, multi-leg
// shipments).
type Multi struct {
	ID        string
	SubTasks  []*Single
	MultiAttr Dimens
}

// JobID implements Job.
func (m *Multi) JobID() string { return m.ID }

// Dimens implements Job.
func (m *Multi) Dimens() Dimens { return m.MultiAttr }

// IsMulti implements Job.
func (m *Multi) IsMulti() bool { return true }

// Tasks implements Job.
func (m *Multi) Tasks() []*Single { return m.SubTasks }

// Validate checks the Multi-level invariants from §3: a non-empty ID, at
// least one task, and every task individually valid.
func (m *Multi) Validate() error {
	if m.ID == "" {
		return ErrEmptyJobID
	}
	if len(m.SubTasks) == 0 {
		return ErrNoTasks
	}
	for _, t := range m.SubTasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// TotalDemand sums the per-dimension demand of every task of a Multi (the
// demand a single route must be able to carry at once in the worst case).
// constraint.Capacity computes the same sum with its own helper over the
// Job interface and does not call this method.
func (m *Multi) TotalDemand() []int64 {
	var total []int64
	for _, t := range m.SubTasks {
		d := t.Attrs.Demand()
		if d == nil {
			continue
		}
		if total == nil {
			total = make([]int64, len(d))
		}
		for i, v := range d {
			if i < len(total) {
				total[i] += v
			}
		}
	}

	return total
}

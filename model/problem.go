package model

// Problem is the immutable, fully-validated input to a solve run (§3): a
// fleet, a job plan, profile-indexed cost functions, a precomputed jobs
// index, locks, and the objective hierarchy. It is built once via
// NewProblem and shared by reference across the whole population for the
// run's duration — nothing in this package mutates a Problem after
// construction.
type Problem struct {
	Fleet        *Fleet
	Jobs         []Job
	TransportCost TransportCost
	ActivityCost  ActivityCost
	JobIndex     *JobIndex
	Locks        []Lock
	Goal         Goal
}

// NewProblem validates every Job and Vehicle, cross-checks Locks against
// Fleet/Jobs, and builds the JobIndex over every profile referenced by
// fleet vehicles. It is the single ConfigurationError boundary (§7): once
// it returns nil error, the solver never rejects the Problem itself.
func NewProblem(fleet *Fleet, jobs []Job, transport TransportCost, activity ActivityCost, locks []Lock, goal Goal) (*Problem, error) {
	for _, j := range jobs {
		switch v := j.(type) {
		case *Single:
			if err := v.Validate(); err != nil {
				return nil, err
			}
		case *Multi:
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
	}

	if err := ValidateLocks(locks, fleet, jobs); err != nil {
		return nil, err
	}

	profiles := make([]string, 0, len(fleet.Vehicles))
	seen := make(map[string]struct{}, len(fleet.Vehicles))
	for _, v := range fleet.Vehicles {
		if _, ok := seen[v.ProfileID]; ok {
			continue
		}
		seen[v.ProfileID] = struct{}{}
		profiles = append(profiles, v.ProfileID)
	}

	idx := BuildJobIndex(jobs, profiles, transport)

	return &Problem{
		Fleet:         fleet,
		Jobs:          jobs,
		TransportCost: transport,
		ActivityCost:  activity,
		JobIndex:      idx,
		Locks:         locks,
		Goal:          goal,
	}, nil
}

// JobByID performs a linear scan for id among Jobs. Called only at
// problem-build and diagnostics time; the hot loop never looks up jobs by
// ID through this path (insertion/ruin carry direct Job references).
func (p *Problem) JobByID(id string) (Job, bool) {
	for _, j := range p.Jobs {
		if j.JobID() == id {
			return j, true
		}
	}

	return nil, false
}

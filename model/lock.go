package model

import "github.com/hashicorp/go-set/v3"

// LockOrder constrains how strictly a Lock's jobs must appear in sequence
// within the bound vehicle's tour (§4.2).
type LockOrder int

const (
	// LockOrderAny permits the locked jobs anywhere in the tour, in any
	// relative order, as long as they are all present.
	LockOrderAny LockOrder = iota

	// LockOrderSequence requires the locked jobs to appear in the given
	// order, but other (unlocked) jobs may be interleaved between them.
	LockOrderSequence

	// LockOrderStrict requires the locked jobs to appear in the given
	// order with no other activity interleaved between them.
	LockOrderStrict
)

// LockPosition constrains where within the tour a Lock's jobs must sit.
type LockPosition int

const (
	// LockPositionAny allows the locked jobs anywhere in the tour.
	LockPositionAny LockPosition = iota

	// LockPositionDeparture requires the locked jobs to immediately
	// follow the tour's start activity.
	LockPositionDeparture

	// LockPositionArrival requires the locked jobs to immediately
	// precede the tour's end activity.
	LockPositionArrival

	// LockPositionFixed requires the locked jobs to occupy both ends:
	// first immediately after departure, last immediately before arrival.
	LockPositionFixed
)

// Lock binds a set of job IDs to one vehicle, in an order/position regime
// (§3, §4.2). Locked jobs are forbidden from removal by any ruin operator
// and from insertion positions inconsistent with Order/Position.
type Lock struct {
	VehicleID string
	ShiftIdx  int
	Order     LockOrder
	Position  LockPosition
	JobIDs    []string
}

// ValidateLocks checks that VehicleID resolves in fleet and every JobIDs entry
// resolves in jobs, and that JobIDs has no duplicate across any Lock in
// locks (ErrConflictingLocks).
func ValidateLocks(locks []Lock, fleet *Fleet, jobs []Job) error {
	jobSet := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		jobSet[j.JobID()] = struct{}{}
	}

	claimed := make(map[string]struct{})
	for _, lk := range locks {
		if _, ok := fleet.VehicleByID(lk.VehicleID); !ok {
			return ErrUnknownLockVehicle
		}
		if len(lk.JobIDs) == 0 {
			return ErrUnknownLockJob
		}
		for _, id := range lk.JobIDs {
			if _, ok := jobSet[id]; !ok {
				return ErrUnknownLockJob
			}
			if _, dup := claimed[id]; dup {
				return ErrConflictingLocks
			}
			claimed[id] = struct{}{}
		}
	}

	return nil
}

// LockedJobs returns the set of job IDs bound by any Lock in locks.
func LockedJobs(locks []Lock) *set.Set[string] {
	out := set.New[string](0)
	for _, lk := range locks {
		out.InsertSlice(lk.JobIDs)
	}

	return out
}

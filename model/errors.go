// Package model defines the immutable problem description consumed by the
// solver: fleet, jobs, transport/activity costs, the jobs proximity index,
// locks and the goal specification (§3, §6 of SPEC_FULL.md).
//
// Nothing in this package mutates after Problem is built; RouteContext and
// SolutionContext (package state) reference it by pointer for the whole
// run.
package model

import "errors"

// Sentinel errors raised while building a Problem. All of them are
// ConfigurationError in the taxonomy of SPEC_FULL §7: surfaced eagerly at
// build time, never during search.
var (
	// ErrEmptyJobID indicates a Single or Multi job was built without an ID.
	ErrEmptyJobID = errors.New("model: job ID is empty")

	// ErrNoPlaces indicates a Single job was built with zero Places.
	ErrNoPlaces = errors.New("model: single job has no places")

	// ErrNoTasks indicates a Multi job was built with zero Tasks.
	ErrNoTasks = errors.New("model: multi job has no tasks")

	// ErrNegativeDemand indicates a demand vector carries a negative entry.
	ErrNegativeDemand = errors.New("model: negative demand")

	// ErrCapacityMismatch indicates demand and vehicle capacity vectors
	// have different dimensionality.
	ErrCapacityMismatch = errors.New("model: capacity dimension mismatch")

	// ErrEmptyVehicleID indicates a Vehicle was built without an ID.
	ErrEmptyVehicleID = errors.New("model: vehicle ID is empty")

	// ErrNoShifts indicates a Vehicle was built with zero shifts.
	ErrNoShifts = errors.New("model: vehicle has no shifts")

	// ErrInvalidTimeWindow indicates TimeWindow.End < TimeWindow.Start.
	ErrInvalidTimeWindow = errors.New("model: invalid time window")

	// ErrUnknownProfile indicates a transport/activity cost lookup used a
	// profile ID the matrices were not built for.
	ErrUnknownProfile = errors.New("model: unknown routing profile")

	// ErrMatrixDimensionMismatch indicates a distance/duration matrix is
	// not square or does not match the declared location count.
	ErrMatrixDimensionMismatch = errors.New("model: routing matrix dimension mismatch")

	// ErrUnknownLockJob indicates a Lock references a job ID absent from
	// the plan.
	ErrUnknownLockJob = errors.New("model: lock references unknown job")

	// ErrUnknownLockVehicle indicates a Lock references a vehicle ID
	// absent from the fleet.
	ErrUnknownLockVehicle = errors.New("model: lock references unknown vehicle")

	// ErrConflictingLocks indicates the same job ID appears in more than
	// one Lock.
	ErrConflictingLocks = errors.New("model: job locked more than once")
)

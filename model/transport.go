package model

import (
	"math"

	"github.com/routeforge/vrp/matrix"
)

// TransportCost answers distance/duration queries between two Locations
// under a routing profile (§3, §6). RoutingError (infinity) is a normal,
// non-fatal return value: constraint.Reachable turns it into a hard
// rejection, never a panic.
type TransportCost interface {
	Distance(profile string, from, to Location) float64
	Duration(profile string, from, to Location) float64
}

// ActivityCost answers per-vehicle service/waiting cost premiums (§3),
// used by the constraint package's cost features alongside
// TransportCost.
type ActivityCost interface {
	ServiceCost(actor *Actor, duration float64) float64
	WaitingCost(actor *Actor, duration float64) float64
}

// ProfileMatrix is one profile's pair of N×N distance/duration tables,
// backed by the teacher's matrix.Dense — the same dense, bounds-checked,
// row-major storage the tsp package assumes of its distance matrices.
type ProfileMatrix struct {
	Distance *matrix.Dense
	Duration *matrix.Dense
}

// MatrixTransportCost is the standard TransportCost: one ProfileMatrix per
// routing profile, looked up by name. It is the in-core analogue of the
// "Routing matrices keyed by profile" input described in §6; ingesting
// them from an external dialect is explicitly out of the core's scope.
type MatrixTransportCost struct {
	profiles map[string]ProfileMatrix
}

// NewMatrixTransportCost validates that every profile's Distance/Duration
// matrices are present and share the same square dimension, then builds
// the lookup table.
func NewMatrixTransportCost(profiles map[string]ProfileMatrix) (*MatrixTransportCost, error) {
	for name, pm := range profiles {
		if pm.Distance == nil || pm.Duration == nil {
			return nil, ErrMatrixDimensionMismatch
		}
		if pm.Distance.Rows() != pm.Distance.Cols() || pm.Duration.Rows() != pm.Duration.Cols() {
			return nil, ErrMatrixDimensionMismatch
		}
		if pm.Distance.Rows() != pm.Duration.Rows() {
			return nil, ErrMatrixDimensionMismatch
		}
		_ = name
	}

	return &MatrixTransportCost{profiles: profiles}, nil
}

// Distance implements TransportCost. An out-of-range profile/location pair
// returns +Inf (RoutingError semantics, §7), never an error value — callers
// that must distinguish "unknown profile" from "known-unreachable" should
// validate profile names against the Fleet at problem-build time instead.
func (m *MatrixTransportCost) Distance(profile string, from, to Location) float64 {
	pm, ok := m.profiles[profile]
	if !ok {
		return math.Inf(1)
	}
	v, err := pm.Distance.At(int(from), int(to))
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// Duration implements TransportCost.
func (m *MatrixTransportCost) Duration(profile string, from, to Location) float64 {
	pm, ok := m.profiles[profile]
	if !ok {
		return math.Inf(1)
	}
	v, err := pm.Duration.At(int(from), int(to))
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// DefaultActivityCost computes waiting/service premiums directly from
// VehicleCosts.PerWaiting/PerService (§3). It is the standard
// ActivityCost; problem readers needing vehicle-class-specific overrides
// provide their own implementation.
type DefaultActivityCost struct{}

// ServiceCost implements ActivityCost.
func (DefaultActivityCost) ServiceCost(actor *Actor, duration float64) float64 {
	if actor == nil || actor.Vehicle == nil {
		return 0
	}

	return actor.Vehicle.Costs.PerService * duration
}

// WaitingCost implements ActivityCost.
func (DefaultActivityCost) WaitingCost(actor *Actor, duration float64) float64 {
	if actor == nil || actor.Vehicle == nil {
		return 0
	}

	return actor.Vehicle.Costs.PerWaiting * duration
}

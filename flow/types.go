// Package flow implements the max-flow bound feasibility.Check runs over
// its bipartite source/vehicle/job/sink network (Dinic's algorithm only —
// the teacher's Edmonds-Karp and Ford-Fulkerson variants have no caller in
// this module and were dropped rather than carried as unreachable code).
package flow

import (
	"context"
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures Dinic.
//   - Epsilon: treat capacities <= Epsilon as zero (default 1e-9).
//   - Verbose: if true, logs each augmentation.
//   - LevelRebuildInterval: rebuild the level graph every N augmentations
//     instead of only when it is exhausted (0 disables early rebuilds).
//   - Ctx: checked for cancellation between BFS passes and DFS pushes.
type FlowOptions struct {
	Epsilon              float64
	Verbose              bool
	LevelRebuildInterval int
	Ctx                  context.Context
}

// normalize fills in the zero-value defaults: Epsilon to 1e-9 and Ctx to a
// non-nil background context.
func (o *FlowOptions) normalize() {
	if o.Epsilon == 0 {
		o.Epsilon = 1e-9
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

package solver

import (
	"context"
	"time"
)

// Quota is the §5 "Quota token" checked at generation boundaries: a
// context.Context with an optional wall-clock deadline, plus manual
// Cancel for an external stop request (e.g. a CLI signal handler).
type Quota struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewQuota returns a Quota bounded by maxSeconds (<=0 means unbounded,
// cancellable only via Cancel).
func NewQuota(maxSeconds int) *Quota {
	ctx := context.Background()
	var cancel context.CancelFunc
	if maxSeconds > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(maxSeconds)*time.Second)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	return &Quota{ctx: ctx, cancel: cancel}
}

// Context returns the underlying context, for passing to evolution.Run
// and insertion.Engine.Run.
func (q *Quota) Context() context.Context {
	return q.ctx
}

// Cancel requests an early stop; the evolution loop observes it at the
// next generation boundary and returns the current best.
func (q *Quota) Cancel() {
	q.cancel()
}

// Package telemetry provides the counters tracking transaction ingestion
// outcomes. The Sink interface is injected into the pipeline so tests can
// substitute a fake and assert exact increment counts.
package telemetry

import (
	"context"
	"sync/atomic"
)

// Sink counts processed and failed transaction outcomes
type Sink interface {
	IncrementSuccess(ctx context.Context)
	IncrementFailure(ctx context.Context)
}

// Counters is an in-memory Sink backed by atomic counters. It is the
// default sink when Redis is not configured, and the fake used in tests.
type Counters struct {
	success int64
	failure int64
}

// NewCounters creates a new in-memory telemetry sink
func NewCounters() *Counters {
	return &Counters{}
}

// IncrementSuccess increments the processed-transactions counter
func (c *Counters) IncrementSuccess(_ context.Context) {
	atomic.AddInt64(&c.success, 1)
}

// IncrementFailure increments the failed-transactions counter
func (c *Counters) IncrementFailure(_ context.Context) {
	atomic.AddInt64(&c.failure, 1)
}

// Success returns the current processed-transactions count
func (c *Counters) Success() int64 {
	return atomic.LoadInt64(&c.success)
}

// Failure returns the current failed-transactions count
func (c *Counters) Failure() int64 {
	return atomic.LoadInt64(&c.failure)
}

package graph

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStore defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend and
// should be atomic with respect to any surrounding transaction when the
// backend supports it. The bool result reports whether a job was actually
// inserted (false when skipped as a duplicate under unique-job options).
type JobStore interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

package mutator

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ScanJobArgs contains the arguments for a domain-scan job submitted to
// River. The domain id is used as the unique key so that at most one scan per
// domain is in flight at a time; all pending scan requests for the domain are
// resolved together when the job finishes.
type ScanJobArgs struct {
	// DomainID is the domain to scan. It is marked unique so River can
	// enforce one job per domain according to InsertOpts.UniqueOpts.
	DomainID uuid.UUID `json:"domain_id" river:"unique"`
	// FQDN is passed along so the worker does not need a lookup before
	// contacting the dispatch service.
	FQDN string `json:"fqdn"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job for the
	// same domain is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args ScanJobArgs) Kind() string { return "ScanDomainJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same domain across multiple job states.
func (args ScanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per domain in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

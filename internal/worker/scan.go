package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"siteguard/internal/mutator"
	"siteguard/pkg/dispatch"
	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
	"siteguard/pkg/logger"
	"siteguard/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a job sleeps when the scanning service reports
// rate limiting.
const rateLimitSnooze = time.Minute

// ScanDomainWorker is a River worker that runs a full scan of one domain via
// the dispatch client and folds the outcome back into the graph: the domain's
// artifacts are replaced, the owning organization's report is refreshed, and
// every pending scan request for the domain is resolved, all in one
// transaction.
//
// Error handling: if the domain vanished while the job sat in the queue, the
// job is canceled. Rate limiting from the scanning service snoozes the job.
// Other errors are retried by River; on the final attempt the pending scan
// requests are marked failed with the cause.
type ScanDomainWorker struct {
	river.WorkerDefaults[mutator.ScanJobArgs]

	// dispatch runs the actual scan against the external scanning service.
	dispatch dispatch.Client
	// store is the graph store the outcome is folded into.
	store graph.Store
}

// NewScanDomainWorker constructs a ScanDomainWorker using the provided
// dispatch client and graph store.
func NewScanDomainWorker(client dispatch.Client, store graph.Store) *ScanDomainWorker {
	return &ScanDomainWorker{
		dispatch: client,
		store:    store,
	}
}

// Work executes a single scan job: it re-checks the domain still exists, runs
// the scan, and commits the outcome.
func (w *ScanDomainWorker) Work(ctx context.Context, job *river.Job[mutator.ScanJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("fqdn", job.Args.FQDN))

	domainID := domain.DomainID(job.Args.DomainID)

	// the domain may have been removed while the job sat in the queue.
	dom, err := w.store.DomainByID(ctx, domainID)
	if err != nil {
		return fmt.Errorf("could not fetch domain: %w", err)
	}
	if dom == nil {
		return river.JobCancel(fmt.Errorf("domain no longer exists")) //nolint: wrapcheck
	}

	outcome, err := w.dispatch.Scan(ctx, job.Args.FQDN)
	if err != nil {
		logger.Error(ctx, "error in scanning domain", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		if job.Attempt >= job.MaxAttempts {
			if failErr := w.markFailed(ctx, domainID, err); failErr != nil {
				logger.Error(ctx, "could not mark scan requests failed", zap.Error(failErr))
			}
		}

		return fmt.Errorf("could not scan domain: %w", err)
	}

	if err := w.commitOutcome(ctx, dom, outcome); err != nil {
		logger.Error(ctx, "could not commit scan outcome", zap.Error(err))

		return fmt.Errorf("could not commit scan outcome: %w", err)
	}

	logger.Info(ctx, "domain scanned successfully", zap.Int("score", outcome.Score))

	return nil
}

// commitOutcome folds a successful scan into the graph in one transaction.
func (w *ScanDomainWorker) commitOutcome(ctx context.Context,
	dom *domain.Domain,
	outcome *dispatch.Outcome) error {
	return w.store.WithTx(ctx, func(tx graph.AllStore) error { //nolint: wrapcheck
		// a rescan replaces the previous artifact set wholesale.
		if _, err := tx.DeleteArtifacts(ctx, dom.ID); err != nil {
			return fmt.Errorf("could not delete previous artifacts: %w", err)
		}

		artifacts := make([]domain.ScanArtifact, 0, len(outcome.Artifacts))
		for _, result := range outcome.Artifacts {
			artifacts = append(artifacts, domain.ScanArtifact{
				DomainID: dom.ID,
				Category: result.Category,
				Payload:  result.Payload,
			})
		}
		if _, err := tx.StoreArtifacts(ctx, artifacts...); err != nil {
			return fmt.Errorf("could not store artifacts: %w", err)
		}

		// the report only exists while some organization owns it.
		ownership, err := tx.OwnershipByDomain(ctx, dom.ID)
		if err != nil {
			return fmt.Errorf("could not fetch ownership: %w", err)
		}
		if ownership != nil {
			if _, err := tx.StoreReport(ctx, domain.Report{
				DomainID: dom.ID,
				Score:    outcome.Score,
				Payload:  outcome.Report,
			}); err != nil {
				return fmt.Errorf("could not store report: %w", err)
			}
		}

		if err := tx.TouchDomainScannedAt(ctx, dom.ID); err != nil {
			return fmt.Errorf("could not update last scanned at: %w", err)
		}

		noError := ""
		if err := tx.UpdateScanRequestsByDomain(ctx, dom.ID, graph.ScanRequestUpdates{
			Status:    domain.ScanStatusCompleted,
			LastError: &noError,
		}); err != nil {
			return fmt.Errorf("could not resolve scan requests: %w", err)
		}

		return nil
	})
}

// markFailed resolves the domain's pending scan requests as failed with the
// given cause. Called on the job's final attempt only.
func (w *ScanDomainWorker) markFailed(ctx context.Context, domainID domain.DomainID, cause error) error {
	msg := cause.Error()

	return w.store.UpdateScanRequestsByDomain(ctx, domainID, graph.ScanRequestUpdates{ //nolint: wrapcheck
		Status:    domain.ScanStatusFailed,
		LastError: &msg,
	})
}

// Package mutator orchestrates the permission-checked graph mutations. Every
// operation moves through the same stages: validate the referenced vertices,
// authorize the actor, plan the cascade, then execute and commit the plan
// inside a single transaction. Failures in the internal stages are logged
// with their cause and surfaced to callers as an opaque retryable error; only
// validation and permission failures carry a specific reason key.
package mutator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"siteguard/internal/authz"
	"siteguard/internal/cascade"
	"siteguard/internal/config"
	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
	"siteguard/pkg/logger"
	"siteguard/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how scan jobs are enqueued.
type Options struct {
	// ScanMaxAttempts is the maximum number of attempts the background worker
	// should make when processing a scan job before marking it failed.
	ScanMaxAttempts int
	// ScanDedupePeriod is the lookback window during which a second scan
	// request for the same domain reuses the already queued job instead of
	// enqueueing a duplicate.
	ScanDedupePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ScanMaxAttempts:  cfg.Scan.MaxAttempts,
		ScanDedupePeriod: cfg.Scan.DedupePeriod,
	}
}

// mutator is the concrete implementation of the Mutator interface. It
// coordinates the authz resolver, the cascade planner and the graph store.
type mutator struct {
	options Options
	store   graph.Store
}

// New constructs a Mutator on top of the given graph store.
func New(store graph.Store, options Options) Mutator {
	return mutator{store: store, options: options}
}

// opaque is what callers see whenever an internal stage fails: the cause has
// been logged, the caller may retry.
func opaque() error {
	return serrors.Reasoned(serrors.ErrUnavailable, string(domain.ReasonTryAgain))
}

// readFailure logs a datastore read error from the validation, authorization
// or planning stage and converts it into the opaque retryable error.
func readFailure(ctx context.Context, msg string, err error) error {
	logger.Get(ctx).Error(msg, zap.Error(err))

	return opaque()
}

// planFailure distinguishes semantic planning rejections (which carry their
// own reason key and pass through) from datastore read failures.
func planFailure(ctx context.Context, op string, err error) error {
	var se *serrors.Error
	if errors.As(err, &se) {
		return err
	}

	logger.Get(ctx).Error("could not plan mutation", zap.String("op", op), zap.Error(err))

	return opaque()
}

func (m mutator) RemoveUserFromOrg(ctx context.Context,
	actorID domain.UserID,
	orgID domain.OrganizationID,
	targetID domain.UserID) error {
	actor, org, err := m.actorAndOrg(ctx, actorID, orgID)
	if err != nil {
		return err
	}
	target, err := m.user(ctx, targetID)
	if err != nil {
		return err
	}

	actorMembership, err := authz.Resolve(ctx, m.store, actor, org.ID)
	if err != nil {
		return readFailure(ctx, "could not resolve actor membership", err)
	}
	targetMembership, err := authz.Resolve(ctx, m.store, target, org.ID)
	if err != nil {
		return readFailure(ctx, "could not resolve target membership", err)
	}
	if decision := authz.RemoveUserFromOrg(actorMembership.Level, targetMembership.Level); !decision.Allow {
		return serrors.Reasoned(serrors.ErrForbidden, string(decision.Reason))
	}

	plan, err := cascade.UserRemoval(ctx, m.store, org.ID, target.ID)
	if err != nil {
		return planFailure(ctx, "remove user from org", err)
	}

	return m.apply(ctx, "remove user from org", plan)
}

func (m mutator) RemoveDomain(ctx context.Context,
	actorID domain.UserID,
	orgID domain.OrganizationID,
	fqdn string) (*domain.Domain, error) {
	actor, org, err := m.actorAndOrg(ctx, actorID, orgID)
	if err != nil {
		return nil, err
	}
	dom, err := m.claimedDomain(ctx, org.ID, fqdn)
	if err != nil {
		return nil, err
	}

	membership, err := authz.Resolve(ctx, m.store, actor, org.ID)
	if err != nil {
		return nil, readFailure(ctx, "could not resolve actor membership", err)
	}
	if decision := authz.RemoveDomain(membership.Level, org.Verified); !decision.Allow {
		return nil, serrors.Reasoned(serrors.ErrForbidden, string(decision.Reason))
	}

	plan, err := cascade.DomainRemoval(ctx, m.store, org.ID, dom.ID)
	if err != nil {
		return nil, planFailure(ctx, "remove domain", err)
	}

	if err := m.apply(ctx, "remove domain", plan); err != nil {
		return nil, err
	}

	// success payload comes from the vertex resolved during validation
	return dom, nil
}

func (m mutator) TransferOrgOwnership(ctx context.Context,
	actorID domain.UserID,
	orgID domain.OrganizationID,
	targetID domain.UserID) error {
	actor, org, err := m.actorAndOrg(ctx, actorID, orgID)
	if err != nil {
		return err
	}
	target, err := m.user(ctx, targetID)
	if err != nil {
		return err
	}

	membership, err := authz.Resolve(ctx, m.store, actor, org.ID)
	if err != nil {
		return readFailure(ctx, "could not resolve actor membership", err)
	}
	if decision := authz.TransferOrgOwnership(membership.Owner, org.Verified); !decision.Allow {
		return serrors.Reasoned(serrors.ErrForbidden, string(decision.Reason))
	}

	plan, err := cascade.OwnershipTransfer(ctx, m.store, org.ID, actor.ID, target.ID)
	if err != nil {
		return planFailure(ctx, "transfer org ownership", err)
	}

	return m.apply(ctx, "transfer org ownership", plan)
}

// RequestScan stores a new pending scan request for the domain and attempts
// to enqueue a background job to process it, both in one transaction. When a
// job for the domain is already queued, the request row still lands and will
// be resolved together with that job.
func (m mutator) RequestScan(ctx context.Context,
	actorID domain.UserID,
	fqdn string) (*domain.ScanRequest, error) {
	actor, err := m.user(ctx, actorID)
	if err != nil {
		return nil, err
	}
	dom, err := m.domainByFQDN(ctx, fqdn)
	if err != nil {
		return nil, err
	}

	level, err := authz.ResolveForDomain(ctx, m.store, actor, dom.ID)
	if err != nil {
		return nil, readFailure(ctx, "could not resolve domain membership", err)
	}
	if decision := authz.RequestScan(level); !decision.Allow {
		return nil, serrors.Reasoned(serrors.ErrForbidden, string(decision.Reason))
	}

	if err := ctx.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "request aborted before the transaction began")
	}

	var request *domain.ScanRequest
	if err := m.store.WithTx(ctx, func(tx graph.AllStore) error {
		stored, err := tx.StoreScanRequest(ctx, domain.ScanRequest{
			DomainID:    dom.ID,
			RequestedBy: actor.ID,
			Status:      domain.ScanStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store scan request: %w", err)
		}
		request = stored

		jobAdded, err := tx.AddJob(ctx, ScanJobArgs{
			DomainID:        uuid.UUID(dom.ID),
			FQDN:            dom.FQDN,
			maxAttempts:     m.options.ScanMaxAttempts,
			uniqueJobPeriod: m.options.ScanDedupePeriod,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this domain.
		// The worker updates every pending request for the domain upon
		// completion, so the fresh request is still resolved.
		_ = jobAdded

		return nil
	}); err != nil {
		logger.Get(ctx).Error("could not enqueue scan", zap.String("fqdn", fqdn), zap.Error(err))

		return nil, opaque()
	}

	return request, nil
}

func (m mutator) ScanRequestStatus(ctx context.Context,
	actorID domain.UserID,
	requestID domain.ScanRequestID) (*domain.ScanRequest, error) {
	actor, err := m.user(ctx, actorID)
	if err != nil {
		return nil, err
	}

	request, err := m.store.ScanRequestByID(ctx, requestID)
	if err != nil {
		return nil, readFailure(ctx, "could not fetch scan request", err)
	}
	if request == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan request not found")
	}

	if request.RequestedBy != actor.ID {
		level, err := authz.ResolveForDomain(ctx, m.store, actor, request.DomainID)
		if err != nil {
			return nil, readFailure(ctx, "could not resolve domain membership", err)
		}
		if level == authz.LevelNone {
			return nil, serrors.Reasoned(serrors.ErrForbidden, string(domain.ReasonInsufficientPermission))
		}
	}

	return request, nil
}

// apply executes the plan's steps inside a single transaction and commits.
// Step and commit failures are logged with their cause and surfaced as the
// opaque retryable error; the transaction is rolled back on any step failure.
func (m mutator) apply(ctx context.Context, op string, plan *cascade.Plan) error {
	if err := ctx.Err(); err != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "request aborted before the transaction began")
	}

	tx, err := m.store.Begin(ctx)
	if err != nil {
		logger.Get(ctx).Error("could not begin transaction", zap.String("op", op), zap.Error(err))

		return opaque()
	}

	for _, step := range plan.Steps {
		if err := step.Run(ctx, tx); err != nil {
			logger.Get(ctx).Error("transaction step failed",
				zap.String("op", op),
				zap.String("step", step.Name),
				zap.Error(err))
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Get(ctx).Error("could not roll back transaction",
					zap.String("op", op),
					zap.Error(rbErr))
			}

			return opaque()
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Get(ctx).Error("could not commit transaction", zap.String("op", op), zap.Error(err))

		return opaque()
	}

	return nil
}

// user fetches a user vertex, rejecting unknown ids.
func (m mutator) user(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := m.store.UserByID(ctx, id)
	if err != nil {
		return nil, readFailure(ctx, "could not fetch user", err)
	}
	if user == nil {
		return nil, serrors.Reasoned(serrors.ErrNotFound, string(domain.ReasonUserNotFound))
	}

	return user, nil
}

// actorAndOrg fetches the acting user and the organization every
// organization-scoped mutation references.
func (m mutator) actorAndOrg(ctx context.Context,
	actorID domain.UserID,
	orgID domain.OrganizationID) (*domain.User, *domain.Organization, error) {
	actor, err := m.user(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}

	org, err := m.store.OrganizationByID(ctx, orgID)
	if err != nil {
		return nil, nil, readFailure(ctx, "could not fetch organization", err)
	}
	if org == nil {
		return nil, nil, serrors.Reasoned(serrors.ErrNotFound, string(domain.ReasonOrganizationNotFound))
	}

	return actor, org, nil
}

// domainByFQDN fetches a domain vertex by name, rejecting unknown names.
func (m mutator) domainByFQDN(ctx context.Context, fqdn string) (*domain.Domain, error) {
	dom, err := m.store.DomainByFQDN(ctx, fqdn)
	if err != nil {
		return nil, readFailure(ctx, "could not fetch domain", err)
	}
	if dom == nil {
		return nil, serrors.Reasoned(serrors.ErrNotFound, string(domain.ReasonDomainNotFound))
	}

	return dom, nil
}

// claimedDomain fetches a domain by name and verifies the organization
// actually claims it. A domain claimed only by other organizations is
// indistinguishable from an unknown one from the caller's point of view.
func (m mutator) claimedDomain(ctx context.Context,
	orgID domain.OrganizationID,
	fqdn string) (*domain.Domain, error) {
	dom, err := m.domainByFQDN(ctx, fqdn)
	if err != nil {
		return nil, err
	}

	claimed, err := m.store.ClaimExists(ctx, orgID, dom.ID)
	if err != nil {
		return nil, readFailure(ctx, "could not check claim", err)
	}
	if !claimed {
		return nil, serrors.Reasoned(serrors.ErrNotFound, string(domain.ReasonDomainNotFound))
	}

	return dom, nil
}

package mutator

import (
	"context"

	"siteguard/pkg/domain"
)

//go:generate mockgen -package mockmutator -source=interface.go -destination=mock/mockmutator.go *
type Mutator interface {
	// RemoveUserFromOrg removes the target user's affiliation with the
	// organization on behalf of the actor.
	RemoveUserFromOrg(ctx context.Context,
		actorID domain.UserID,
		orgID domain.OrganizationID,
		targetID domain.UserID) error
	// RemoveDomain removes the domain identified by its FQDN from the
	// organization, cascading to scan data when the last claim goes away. On
	// success it returns the removed domain as resolved during validation; the
	// vertex is never re-read after the mutation.
	RemoveDomain(ctx context.Context,
		actorID domain.UserID,
		orgID domain.OrganizationID,
		fqdn string) (*domain.Domain, error)
	// TransferOrgOwnership hands the organization's owner flag from the actor
	// to the target member.
	TransferOrgOwnership(ctx context.Context,
		actorID domain.UserID,
		orgID domain.OrganizationID,
		targetID domain.UserID) error
	// RequestScan enqueues a fresh scan of the domain identified by its FQDN
	// and returns the pending request, whose ID doubles as the token for
	// polling the outcome.
	RequestScan(ctx context.Context,
		actorID domain.UserID,
		fqdn string) (*domain.ScanRequest, error)
	// ScanRequestStatus returns the current state of a scan request. Only the
	// requesting user, members of organizations claiming the domain, and
	// global super admins may poll it.
	ScanRequestStatus(ctx context.Context,
		actorID domain.UserID,
		requestID domain.ScanRequestID) (*domain.ScanRequest, error)
}

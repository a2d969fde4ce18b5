package graph

import (
	"context"

	"siteguard/pkg/domain"
)

// AffiliationStore defines operations on the user-organization edge set.
type AffiliationStore interface {
	// StoreAffiliation inserts an affiliation edge and returns the stored row.
	StoreAffiliation(ctx context.Context, aff domain.Affiliation) (*domain.Affiliation, error)
	// Affiliation fetches the edge between the given organization and user.
	// Returns nil when no edge exists.
	Affiliation(ctx context.Context, orgID domain.OrganizationID, userID domain.UserID) (*domain.Affiliation, error)
	// CountAffiliations returns the number of affiliation edges between the
	// given organization and user (0 or 1 under the uniqueness invariant).
	CountAffiliations(ctx context.Context, orgID domain.OrganizationID, userID domain.UserID) (int64, error)
	// DeleteAffiliation removes the edge between the organization and user.
	// The bool result reports whether an edge was actually removed.
	DeleteAffiliation(ctx context.Context, orgID domain.OrganizationID, userID domain.UserID) (bool, error)
	// SetAffiliationOwner flips the owner flag on the edge between the
	// organization and user. The bool result reports whether an edge was
	// actually updated.
	SetAffiliationOwner(ctx context.Context,
		orgID domain.OrganizationID,
		userID domain.UserID,
		owner bool) (bool, error)
	// AffiliatedWithDomain reports whether the user is affiliated with any
	// organization that claims the given domain.
	AffiliatedWithDomain(ctx context.Context, userID domain.UserID, domainID domain.DomainID) (bool, error)
}

// ClaimStore defines operations on the organization-domain claim edge set.
type ClaimStore interface {
	// StoreClaim inserts a claim edge and returns the stored row.
	StoreClaim(ctx context.Context, claim domain.Claim) (*domain.Claim, error)
	// ClaimExists reports whether the organization claims the domain.
	ClaimExists(ctx context.Context, orgID domain.OrganizationID, domainID domain.DomainID) (bool, error)
	// CountClaims returns the number of claim edges pointing at the domain,
	// across all organizations.
	CountClaims(ctx context.Context, domainID domain.DomainID) (int64, error)
	// DeleteClaim removes the claim edge between the organization and domain.
	// The bool result reports whether an edge was actually removed.
	DeleteClaim(ctx context.Context, orgID domain.OrganizationID, domainID domain.DomainID) (bool, error)
}

// OwnershipStore defines operations on the report-ownership edge and the
// derived report vertex it points to. At most one organization owns a given
// domain's report at a time.
type OwnershipStore interface {
	// StoreOwnership inserts an ownership edge and returns the stored row.
	StoreOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error)
	// OwnershipByDomain fetches the ownership edge for the domain regardless
	// of owning organization. Returns nil when no organization owns the
	// domain's report data.
	OwnershipByDomain(ctx context.Context, domainID domain.DomainID) (*domain.Ownership, error)
	// DeleteOwnership removes the ownership edge between the organization and
	// the domain. The bool result reports whether an edge was actually
	// removed; an edge held by a different organization is left untouched so
	// callers acting on stale reads fail instead of deleting someone else's
	// edge.
	DeleteOwnership(ctx context.Context, domainID domain.DomainID, orgID domain.OrganizationID) (bool, error)

	// StoreReport inserts or replaces the derived report for a domain.
	StoreReport(ctx context.Context, r domain.Report) (*domain.Report, error)
	// ReportByDomain fetches the derived report. Returns nil when not found.
	ReportByDomain(ctx context.Context, domainID domain.DomainID) (*domain.Report, error)
	// DeleteReport removes the derived report vertex. The bool result reports
	// whether a row was actually removed.
	DeleteReport(ctx context.Context, domainID domain.DomainID) (bool, error)
}

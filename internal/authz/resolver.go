package authz

import (
	"context"
	"fmt"

	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
)

// Resolve computes the membership of the given user within the organization
// by reading the affiliation edge set. A missing edge resolves to LevelNone
// rather than an error; only store I/O failures propagate.
//
// The account-level super-admin role overrides the edge-derived level for
// every organization but never grants the owner flag.
func Resolve(ctx context.Context,
	store graph.AllStore,
	user *domain.User,
	orgID domain.OrganizationID) (Membership, error) {
	aff, err := store.Affiliation(ctx, orgID, user.ID)
	if err != nil {
		return Membership{}, fmt.Errorf("could not resolve affiliation: %w", err)
	}

	m := Membership{Level: LevelNone}
	if aff != nil {
		m.Level = levelOf(aff.Permission)
		m.Owner = aff.Owner
	}
	if user.SuperAdmin {
		m.Level = LevelSuperAdmin
		m.Global = true
	}

	return m, nil
}

// ResolveForDomain computes the actor's effective level with respect to a
// domain: the best level the actor holds in any organization claiming it.
// Only the distinction none vs. member matters to callers, so the result is
// collapsed to LevelNone or LevelUser unless the actor is a global super
// admin.
func ResolveForDomain(ctx context.Context,
	store graph.AllStore,
	user *domain.User,
	domainID domain.DomainID) (Level, error) {
	if user.SuperAdmin {
		return LevelSuperAdmin, nil
	}

	affiliated, err := store.AffiliatedWithDomain(ctx, user.ID, domainID)
	if err != nil {
		return LevelNone, fmt.Errorf("could not resolve domain affiliation: %w", err)
	}
	if !affiliated {
		return LevelNone, nil
	}

	return LevelUser, nil
}

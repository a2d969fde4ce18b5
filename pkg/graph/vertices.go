package graph

import (
	"context"

	"siteguard/pkg/domain"
)

// UserStore defines read and write operations for user vertices. Lookups
// return nil without error when the user does not exist; only store I/O
// failures produce errors.
type UserStore interface {
	// StoreUser inserts a user and returns the stored row including
	// generated fields.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by id. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// OrganizationStore defines read and write operations for organization vertices.
type OrganizationStore interface {
	// StoreOrganization inserts an organization and returns the stored row.
	StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error)
	// OrganizationByID fetches an organization by id. Returns nil when not found.
	OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
}

// DomainStore defines read and write operations for domain vertices. Deleting
// a domain is only valid once its dependent artifacts, claims and ownership
// rows are gone; sequencing is the cascade planner's responsibility.
type DomainStore interface {
	// StoreDomain inserts a domain and returns the stored row.
	StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// DomainByID fetches a domain by id. Returns nil when not found.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
	// DomainByFQDN fetches a domain by its fully qualified name. Returns nil
	// when not found.
	DomainByFQDN(ctx context.Context, fqdn string) (*domain.Domain, error)
	// DeleteDomain removes the domain vertex. The bool result reports whether
	// a row was actually removed.
	DeleteDomain(ctx context.Context, id domain.DomainID) (bool, error)
	// TouchDomainScannedAt sets the domain's last-scanned timestamp to now.
	TouchDomainScannedAt(ctx context.Context, id domain.DomainID) error
}

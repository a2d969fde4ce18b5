package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationID uniquely identifies an organization.
type OrganizationID uuid.UUID

// Organization represents a tenant that claims domains and has users
// affiliated with it.
type Organization struct {
	// ID is the unique identifier of the organization.
	ID OrganizationID `json:"id"`
	// Name is the display name of the organization.
	Name string `json:"name"`
	// Verified marks organizations whose identity has been confirmed.
	// Verified organizations are subject to stricter removal rules: their
	// domains may only be removed by a super admin and their ownership is
	// not transferable.
	Verified bool `json:"verified"`

	// CreatedAt is the time the organization was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Permission is the per-organization permission level stored on an
// affiliation edge.
type Permission string

const (
	// PermissionUser is a regular member of an organization.
	PermissionUser Permission = "user"
	// PermissionAdmin may manage the organization's domains and regular members.
	PermissionAdmin Permission = "admin"
	// PermissionSuperAdmin is the highest affiliation level. Global super
	// admins additionally carry User.SuperAdmin.
	PermissionSuperAdmin Permission = "super_admin"
)

// Valid reports whether p is one of the known permission levels.
func (p Permission) Valid() bool {
	switch p {
	case PermissionUser, PermissionAdmin, PermissionSuperAdmin:
		return true
	}

	return false
}

// Affiliation is the edge between a user and an organization. At most one
// affiliation exists per (user, organization) pair, and among all
// affiliations of one organization exactly one carries Owner=true.
type Affiliation struct {
	// OrganizationID identifies the organization side of the edge.
	OrganizationID OrganizationID `json:"organizationId"`
	// UserID identifies the user side of the edge.
	UserID UserID `json:"userId"`

	// Permission is the user's level within the organization.
	Permission Permission `json:"permission"`
	// Owner marks the single owning member of the organization.
	Owner bool `json:"owner"`

	// CreatedAt is the time the affiliation was established.
	CreatedAt time.Time `json:"createdAt"`
}

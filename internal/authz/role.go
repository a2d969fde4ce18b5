// Package authz computes an actor's effective permissions from the
// affiliation edge set and provides the pure policy functions deciding every
// state-changing operation. Policy functions perform no I/O; the resolver is
// the only piece that touches the graph store.
package authz

import (
	"siteguard/pkg/domain"
)

// Level is the effective permission level of an actor with respect to one
// organization. Unlike domain.Permission it includes LevelNone for actors
// with no affiliation edge.
type Level string

const (
	// LevelNone means the actor has no affiliation with the organization.
	LevelNone Level = "none"
	// LevelUser is a regular member.
	LevelUser Level = "user"
	// LevelAdmin may manage the organization's domains and regular members.
	LevelAdmin Level = "admin"
	// LevelSuperAdmin is the highest level, either scoped to the
	// organization or granted globally on the user account.
	LevelSuperAdmin Level = "super_admin"
)

// levelOf maps a stored permission onto an effective level.
func levelOf(p domain.Permission) Level {
	switch p {
	case domain.PermissionUser:
		return LevelUser
	case domain.PermissionAdmin:
		return LevelAdmin
	case domain.PermissionSuperAdmin:
		return LevelSuperAdmin
	}

	return LevelNone
}

// Membership is the resolved position of one user within one organization.
type Membership struct {
	// Level is the effective permission level. Global super admins resolve
	// to LevelSuperAdmin for every organization.
	Level Level
	// Owner reports whether the user's affiliation edge carries the owner
	// flag. A global super admin is not implicitly an owner.
	Owner bool
	// Global is set when Level comes from the account-level super-admin role
	// rather than an affiliation edge.
	Global bool
}

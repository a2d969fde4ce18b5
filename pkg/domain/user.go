package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// User represents an account that can be affiliated with organizations.
// Users are created and authenticated outside of this service; the mutation
// core only reads them and manages their affiliation edges.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is the login identity of the user.
	Email string `json:"email"`
	// DisplayName is the human-readable name shown in listings.
	DisplayName string `json:"displayName"`

	// SuperAdmin marks a global super administrator. This is an explicit
	// account-level role rather than an affiliation with a reserved
	// organization, so it can never collide with a real organization id.
	SuperAdmin bool `json:"superAdmin"`

	// CreatedAt is the time the user record was created.
	CreatedAt time.Time `json:"createdAt"`
}

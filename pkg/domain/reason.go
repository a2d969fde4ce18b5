package domain

// ReasonKey is a stable machine-readable identifier for why an operation was
// rejected. The set is closed: callers render these keys into localized
// messages at the edge and must never match on error prose.
type ReasonKey string

const (
	// ReasonUserNotFound indicates the referenced user does not exist.
	ReasonUserNotFound ReasonKey = "user_not_found"
	// ReasonOrganizationNotFound indicates the referenced organization does not exist.
	ReasonOrganizationNotFound ReasonKey = "organization_not_found"
	// ReasonDomainNotFound indicates the referenced domain does not exist.
	ReasonDomainNotFound ReasonKey = "domain_not_found"
	// ReasonTargetNotAffiliated indicates the target user has no affiliation
	// with the organization.
	ReasonTargetNotAffiliated ReasonKey = "target_not_affiliated"

	// ReasonInsufficientPermission is the generic permission denial for
	// actors below the required level.
	ReasonInsufficientPermission ReasonKey = "insufficient_permission"
	// ReasonSuperAdminImmune indicates a super admin tried to remove another
	// super admin.
	ReasonSuperAdminImmune ReasonKey = "super_admin_immune"
	// ReasonAdminVsAdmin indicates an admin tried to remove another admin.
	ReasonAdminVsAdmin ReasonKey = "admin_cannot_remove_admin"
	// ReasonContactSuperAdmin indicates the domain belongs to a verified
	// organization and only a super admin may remove it.
	ReasonContactSuperAdmin ReasonKey = "contact_super_admin"
	// ReasonContactOrgAdmin indicates the actor must ask an organization
	// admin to remove the domain.
	ReasonContactOrgAdmin ReasonKey = "contact_organization_admin"
	// ReasonVerifiedOwnershipLocked indicates ownership of a verified
	// organization cannot be transferred.
	ReasonVerifiedOwnershipLocked ReasonKey = "verified_ownership_locked"
	// ReasonOwnerOnly indicates only the current owner may transfer ownership.
	ReasonOwnerOnly ReasonKey = "owner_only"

	// ReasonTryAgain is the opaque reason returned for internal failures.
	// The internal cause is logged, never surfaced.
	ReasonTryAgain ReasonKey = "try_again"
)

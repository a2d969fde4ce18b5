package authz

import (
	"siteguard/pkg/domain"
)

// Decision is the outcome of a policy check. Denials always carry a reason
// key from the closed set in pkg/domain so callers can render exact,
// reproducible messages without matching on prose.
type Decision struct {
	Allow  bool
	Reason domain.ReasonKey
}

func allow() Decision { return Decision{Allow: true} }

func deny(reason domain.ReasonKey) Decision { return Decision{Reason: reason} }

// RemoveUserFromOrg decides whether an actor may remove a member from an
// organization. Both levels are resolved against the same organization, so an
// admin can never reach into a foreign organization: there the actor resolves
// to LevelNone.
//
// A super admin may remove admins and users anywhere but never another super
// admin. An admin may remove regular users of their own organization only.
func RemoveUserFromOrg(actor, target Level) Decision {
	switch {
	case actor == LevelSuperAdmin && target == LevelSuperAdmin:
		return deny(domain.ReasonSuperAdminImmune)
	case actor == LevelSuperAdmin:
		return allow()
	case actor == LevelAdmin && target == LevelUser:
		return allow()
	case actor == LevelAdmin && target == LevelAdmin:
		return deny(domain.ReasonAdminVsAdmin)
	case actor == LevelAdmin:
		return deny(domain.ReasonInsufficientPermission)
	default:
		return deny(domain.ReasonInsufficientPermission)
	}
}

// RemoveDomain decides whether an actor may remove a domain from an
// organization. Verified organizations are locked down to super admins; for
// unverified organizations any admin may remove.
func RemoveDomain(actor Level, orgVerified bool) Decision {
	if orgVerified {
		if actor == LevelSuperAdmin {
			return allow()
		}

		return deny(domain.ReasonContactSuperAdmin)
	}

	if actor == LevelAdmin || actor == LevelSuperAdmin {
		return allow()
	}

	return deny(domain.ReasonContactOrgAdmin)
}

// TransferOrgOwnership decides whether the actor may hand the organization's
// owner flag to another member. Ownership of verified organizations is not
// transferable at all; otherwise only the current owner may transfer. Whether
// the receiving user is actually affiliated is checked by the planner, not
// here.
func TransferOrgOwnership(actorIsOwner, orgVerified bool) Decision {
	if orgVerified {
		return deny(domain.ReasonVerifiedOwnershipLocked)
	}
	if !actorIsOwner {
		return deny(domain.ReasonOwnerOnly)
	}

	return allow()
}

// RequestScan decides whether the actor may dispatch a scan for a domain. Any
// member of a claiming organization may; global super admins may for every
// domain.
func RequestScan(actor Level) Decision {
	if actor == LevelNone {
		return deny(domain.ReasonInsufficientPermission)
	}

	return allow()
}

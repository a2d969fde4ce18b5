package authz_test

import (
	"testing"

	"siteguard/internal/authz"
	"siteguard/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestRemoveUserFromOrg(t *testing.T) {
	testCases := []struct {
		name   string
		actor  authz.Level
		target authz.Level
		allow  bool
		reason domain.ReasonKey
	}{
		{
			name:   "super admin removes admin",
			actor:  authz.LevelSuperAdmin,
			target: authz.LevelAdmin,
			allow:  true,
		},
		{
			name:   "super admin removes user",
			actor:  authz.LevelSuperAdmin,
			target: authz.LevelUser,
			allow:  true,
		},
		{
			name:   "super admin removes unaffiliated target",
			actor:  authz.LevelSuperAdmin,
			target: authz.LevelNone,
			allow:  true,
		},
		{
			name:   "super admin cannot remove super admin",
			actor:  authz.LevelSuperAdmin,
			target: authz.LevelSuperAdmin,
			reason: domain.ReasonSuperAdminImmune,
		},
		{
			name:   "admin removes user",
			actor:  authz.LevelAdmin,
			target: authz.LevelUser,
			allow:  true,
		},
		{
			name:   "admin cannot remove admin",
			actor:  authz.LevelAdmin,
			target: authz.LevelAdmin,
			reason: domain.ReasonAdminVsAdmin,
		},
		{
			name:   "admin cannot remove super admin",
			actor:  authz.LevelAdmin,
			target: authz.LevelSuperAdmin,
			reason: domain.ReasonInsufficientPermission,
		},
		{
			name:   "admin cannot remove unaffiliated target",
			actor:  authz.LevelAdmin,
			target: authz.LevelNone,
			reason: domain.ReasonInsufficientPermission,
		},
		{
			name:   "user cannot remove anyone",
			actor:  authz.LevelUser,
			target: authz.LevelUser,
			reason: domain.ReasonInsufficientPermission,
		},
		{
			name:   "outsider cannot remove anyone",
			actor:  authz.LevelNone,
			target: authz.LevelUser,
			reason: domain.ReasonInsufficientPermission,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decision := authz.RemoveUserFromOrg(testCase.actor, testCase.target)
			require.Equal(t, testCase.allow, decision.Allow)
			require.Equal(t, testCase.reason, decision.Reason)
		})
	}
}

func TestRemoveDomain(t *testing.T) {
	testCases := []struct {
		name     string
		actor    authz.Level
		verified bool
		allow    bool
		reason   domain.ReasonKey
	}{
		{
			name:  "admin removes from unverified org",
			actor: authz.LevelAdmin,
			allow: true,
		},
		{
			name:  "super admin removes from unverified org",
			actor: authz.LevelSuperAdmin,
			allow: true,
		},
		{
			name:   "user cannot remove from unverified org",
			actor:  authz.LevelUser,
			reason: domain.ReasonContactOrgAdmin,
		},
		{
			name:   "outsider cannot remove from unverified org",
			actor:  authz.LevelNone,
			reason: domain.ReasonContactOrgAdmin,
		},
		{
			name:     "super admin removes from verified org",
			actor:    authz.LevelSuperAdmin,
			verified: true,
			allow:    true,
		},
		{
			name:     "admin cannot remove from verified org",
			actor:    authz.LevelAdmin,
			verified: true,
			reason:   domain.ReasonContactSuperAdmin,
		},
		{
			name:     "user cannot remove from verified org",
			actor:    authz.LevelUser,
			verified: true,
			reason:   domain.ReasonContactSuperAdmin,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decision := authz.RemoveDomain(testCase.actor, testCase.verified)
			require.Equal(t, testCase.allow, decision.Allow)
			require.Equal(t, testCase.reason, decision.Reason)
		})
	}
}

func TestTransferOrgOwnership(t *testing.T) {
	testCases := []struct {
		name     string
		owner    bool
		verified bool
		allow    bool
		reason   domain.ReasonKey
	}{
		{
			name:  "owner transfers in unverified org",
			owner: true,
			allow: true,
		},
		{
			name:   "non-owner cannot transfer",
			reason: domain.ReasonOwnerOnly,
		},
		{
			name:     "verified org is locked even for the owner",
			owner:    true,
			verified: true,
			reason:   domain.ReasonVerifiedOwnershipLocked,
		},
		{
			name:     "verified org is locked for non-owners too",
			verified: true,
			reason:   domain.ReasonVerifiedOwnershipLocked,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			decision := authz.TransferOrgOwnership(testCase.owner, testCase.verified)
			require.Equal(t, testCase.allow, decision.Allow)
			require.Equal(t, testCase.reason, decision.Reason)
		})
	}
}

func TestRequestScan(t *testing.T) {
	for _, level := range []authz.Level{authz.LevelUser, authz.LevelAdmin, authz.LevelSuperAdmin} {
		decision := authz.RequestScan(level)
		require.True(t, decision.Allow, "level %s should be allowed", level)
	}

	decision := authz.RequestScan(authz.LevelNone)
	require.False(t, decision.Allow)
	require.Equal(t, domain.ReasonInsufficientPermission, decision.Reason)
}

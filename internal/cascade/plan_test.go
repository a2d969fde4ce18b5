package cascade_test

import (
	"context"
	"errors"
	"testing"

	"siteguard/internal/cascade"
	"siteguard/pkg/domain"
	mockgraph "siteguard/pkg/graph/mock"
	"siteguard/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stepNames(plan *cascade.Plan) []string {
	names := make([]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		names = append(names, step.Name)
	}

	return names
}

func runPlan(t *testing.T, plan *cascade.Plan, store *mockgraph.MockAllStore) {
	t.Helper()

	for _, step := range plan.Steps {
		require.NoError(t, step.Run(context.Background(), store), "step %q", step.Name)
	}
}

func TestUserRemoval(t *testing.T) {
	orgID := domain.OrganizationID(uuid.New())
	userID := domain.UserID(uuid.New())

	t.Run("deletes the affiliation edge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, userID).Return(int64(1), nil)

		plan, err := cascade.UserRemoval(context.Background(), store, orgID, userID)
		require.NoError(t, err)
		require.Equal(t, []string{"remove affiliation edge"}, stepNames(plan))

		store.EXPECT().DeleteAffiliation(gomock.Any(), orgID, userID).Return(true, nil)
		runPlan(t, plan, store)
	})

	t.Run("unaffiliated target is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, userID).Return(int64(0), nil)

		_, err := cascade.UserRemoval(context.Background(), store, orgID, userID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, string(domain.ReasonTargetNotAffiliated), serrors.ReasonOf(err))
	})

	t.Run("fails when the edge is already gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, userID).Return(int64(1), nil)

		plan, err := cascade.UserRemoval(context.Background(), store, orgID, userID)
		require.NoError(t, err)

		store.EXPECT().DeleteAffiliation(gomock.Any(), orgID, userID).Return(false, nil)
		require.Error(t, plan.Steps[0].Run(context.Background(), store))
	})
}

func TestDomainRemoval(t *testing.T) {
	orgID := domain.OrganizationID(uuid.New())
	otherOrgID := domain.OrganizationID(uuid.New())
	domainID := domain.DomainID(uuid.New())

	t.Run("last claim removes the whole domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(1), nil)
		store.EXPECT().OwnershipByDomain(gomock.Any(), domainID).
			Return(&domain.Ownership{OrganizationID: orgID, DomainID: domainID}, nil)

		plan, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.NoError(t, err)
		require.Equal(t, []string{
			"remove claim edge",
			"remove scan data",
			"remove ownership edge",
			"remove report data",
			"remove domain",
		}, stepNames(plan))

		store.EXPECT().DeleteClaim(gomock.Any(), orgID, domainID).Return(true, nil)
		store.EXPECT().DeleteArtifacts(gomock.Any(), domainID).Return(int64(6), nil)
		store.EXPECT().DeleteOwnership(gomock.Any(), domainID, orgID).Return(true, nil)
		store.EXPECT().DeleteReport(gomock.Any(), domainID).Return(true, nil)
		store.EXPECT().DeleteDomain(gomock.Any(), domainID).Return(true, nil)
		runPlan(t, plan, store)
	})

	t.Run("last claim without ownership skips report steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(1), nil)
		store.EXPECT().OwnershipByDomain(gomock.Any(), domainID).Return(nil, nil)

		plan, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.NoError(t, err)
		require.Equal(t, []string{
			"remove claim edge",
			"remove scan data",
			"remove domain",
		}, stepNames(plan))
	})

	t.Run("shared domain detaches the claim only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(2), nil)
		store.EXPECT().OwnershipByDomain(gomock.Any(), domainID).
			Return(&domain.Ownership{OrganizationID: otherOrgID, DomainID: domainID}, nil)

		plan, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.NoError(t, err)
		require.Equal(t, []string{"remove claim edge"}, stepNames(plan))
	})

	t.Run("shared domain owned by the leaving org drops the report too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(3), nil)
		store.EXPECT().OwnershipByDomain(gomock.Any(), domainID).
			Return(&domain.Ownership{OrganizationID: orgID, DomainID: domainID}, nil)

		plan, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.NoError(t, err)
		require.Equal(t, []string{
			"remove claim edge",
			"remove ownership edge",
			"remove report data",
		}, stepNames(plan))
	})

	t.Run("ownership handed off after planning fails the step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(2), nil)
		store.EXPECT().OwnershipByDomain(gomock.Any(), domainID).
			Return(&domain.Ownership{OrganizationID: orgID, DomainID: domainID}, nil)

		plan, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.NoError(t, err)
		require.Equal(t, []string{
			"remove claim edge",
			"remove ownership edge",
			"remove report data",
		}, stepNames(plan))

		// the edge now belongs to another organization, so the scoped delete
		// matches nothing and the step must abort instead of removing it
		store.EXPECT().DeleteOwnership(gomock.Any(), domainID, orgID).Return(false, nil)
		require.ErrorContains(t, plan.Steps[1].Run(context.Background(), store), "vanished")
	})

	t.Run("planning read failures propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountClaims(gomock.Any(), domainID).Return(int64(0), errors.New("boom"))

		_, err := cascade.DomainRemoval(context.Background(), store, orgID, domainID)
		require.Error(t, err)
	})
}

func TestOwnershipTransfer(t *testing.T) {
	orgID := domain.OrganizationID(uuid.New())
	currentOwner := domain.UserID(uuid.New())
	target := domain.UserID(uuid.New())

	t.Run("clears then sets the owner flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, target).Return(int64(1), nil)

		plan, err := cascade.OwnershipTransfer(context.Background(), store, orgID, currentOwner, target)
		require.NoError(t, err)
		require.Equal(t, []string{"clear owner flag", "set owner flag"}, stepNames(plan))

		gomock.InOrder(
			store.EXPECT().SetAffiliationOwner(gomock.Any(), orgID, currentOwner, false).Return(true, nil),
			store.EXPECT().SetAffiliationOwner(gomock.Any(), orgID, target, true).Return(true, nil),
		)
		runPlan(t, plan, store)
	})

	t.Run("unaffiliated target is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, target).Return(int64(0), nil)

		_, err := cascade.OwnershipTransfer(context.Background(), store, orgID, currentOwner, target)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, string(domain.ReasonTargetNotAffiliated), serrors.ReasonOf(err))
	})

	t.Run("a vanished owner edge fails the step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockgraph.NewMockAllStore(ctrl)
		store.EXPECT().CountAffiliations(gomock.Any(), orgID, target).Return(int64(1), nil)

		plan, err := cascade.OwnershipTransfer(context.Background(), store, orgID, currentOwner, target)
		require.NoError(t, err)

		store.EXPECT().SetAffiliationOwner(gomock.Any(), orgID, currentOwner, false).Return(false, nil)
		require.Error(t, plan.Steps[0].Run(context.Background(), store))
	})
}

// Package cascade turns a requested graph mutation into an ordered plan of
// datastore steps. Planning reads the graph outside any transaction to pick a
// shape (for example full domain removal vs. detaching a single claim); the
// steps themselves run inside one transaction and re-verify their effects, so
// a plan built against stale state fails the transaction instead of silently
// corrupting the graph.
package cascade

import (
	"context"
	"fmt"

	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
	"siteguard/pkg/serrors"

	"github.com/google/uuid"
)

// Step is one transactional unit of work within a plan. Run must be executed
// against a transaction-bound store and should fail when the graph no longer
// matches what planning assumed.
type Step struct {
	// Name identifies the step in logs and error messages.
	Name string
	// Run applies the step.
	Run func(ctx context.Context, store graph.AllStore) error
}

// Plan is an ordered list of steps applied inside a single transaction.
type Plan struct {
	Steps []Step
}

// UserRemoval plans removing a member from an organization: a single step
// deleting the affiliation edge. The target's affiliation is verified here,
// outside the transaction.
func UserRemoval(ctx context.Context,
	store graph.AllStore,
	orgID domain.OrganizationID,
	userID domain.UserID) (*Plan, error) {
	count, err := store.CountAffiliations(ctx, orgID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not count target affiliations: %w", err)
	}
	if count == 0 {
		return nil, serrors.With(serrors.ErrBadRequest,
			"target user is not affiliated with the organization").
			WithReason(string(domain.ReasonTargetNotAffiliated))
	}

	return &Plan{Steps: []Step{
		removeAffiliationStep(orgID, userID),
	}}, nil
}

// DomainRemoval plans removing a domain from an organization. The plan shape
// depends on how many organizations claim the domain:
//
//   - more than one claim: only this organization's claim edge is detached,
//     plus the ownership edge and report when this organization owns them;
//   - last claim: the claim edge, all scan artifacts, any ownership edge and
//     report, and finally the domain vertex itself are removed.
//
// The claim count and ownership edge are read here, outside the transaction.
func DomainRemoval(ctx context.Context,
	store graph.AllStore,
	orgID domain.OrganizationID,
	domainID domain.DomainID) (*Plan, error) {
	claims, err := store.CountClaims(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not count claims: %w", err)
	}

	ownership, err := store.OwnershipByDomain(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ownership edge: %w", err)
	}

	plan := &Plan{Steps: []Step{
		removeClaimStep(orgID, domainID),
	}}

	if claims > 1 {
		// other organizations keep the domain alive, detach only.
		if ownership != nil && ownership.OrganizationID == orgID {
			plan.Steps = append(plan.Steps,
				removeOwnershipStep(domainID, orgID),
				removeReportStep(domainID))
		}

		return plan, nil
	}

	plan.Steps = append(plan.Steps, Step{
		Name: "remove scan data",
		Run: func(ctx context.Context, store graph.AllStore) error {
			if _, err := store.DeleteArtifacts(ctx, domainID); err != nil {
				return fmt.Errorf("could not delete artifacts: %w", err)
			}

			return nil
		},
	})

	if ownership != nil {
		plan.Steps = append(plan.Steps,
			removeOwnershipStep(domainID, ownership.OrganizationID),
			removeReportStep(domainID))
	}

	plan.Steps = append(plan.Steps, Step{
		Name: "remove domain",
		Run: func(ctx context.Context, store graph.AllStore) error {
			found, err := store.DeleteDomain(ctx, domainID)
			if err != nil {
				return fmt.Errorf("could not delete domain: %w", err)
			}
			if !found {
				return fmt.Errorf("domain %s vanished mid-removal", uuid.UUID(domainID))
			}

			return nil
		},
	})

	return plan, nil
}

// OwnershipTransfer plans handing the organization's owner flag from the
// current owner to the target member: the current owner's flag is cleared
// first, then the target's is set, each step requiring exactly one affected
// edge. The target's affiliation is verified here, outside the transaction.
func OwnershipTransfer(ctx context.Context,
	store graph.AllStore,
	orgID domain.OrganizationID,
	currentOwner, target domain.UserID) (*Plan, error) {
	count, err := store.CountAffiliations(ctx, orgID, target)
	if err != nil {
		return nil, fmt.Errorf("could not count target affiliations: %w", err)
	}
	if count == 0 {
		return nil, serrors.With(serrors.ErrBadRequest,
			"target user is not affiliated with the organization").
			WithReason(string(domain.ReasonTargetNotAffiliated))
	}

	return &Plan{Steps: []Step{
		{
			Name: "clear owner flag",
			Run: func(ctx context.Context, store graph.AllStore) error {
				found, err := store.SetAffiliationOwner(ctx, orgID, currentOwner, false)
				if err != nil {
					return fmt.Errorf("could not clear owner flag: %w", err)
				}
				if !found {
					return fmt.Errorf("owner affiliation of user %s vanished mid-transfer",
						uuid.UUID(currentOwner))
				}

				return nil
			},
		},
		{
			Name: "set owner flag",
			Run: func(ctx context.Context, store graph.AllStore) error {
				found, err := store.SetAffiliationOwner(ctx, orgID, target, true)
				if err != nil {
					return fmt.Errorf("could not set owner flag: %w", err)
				}
				if !found {
					return fmt.Errorf("target affiliation of user %s vanished mid-transfer",
						uuid.UUID(target))
				}

				return nil
			},
		},
	}}, nil
}

func removeAffiliationStep(orgID domain.OrganizationID, userID domain.UserID) Step {
	return Step{
		Name: "remove affiliation edge",
		Run: func(ctx context.Context, store graph.AllStore) error {
			found, err := store.DeleteAffiliation(ctx, orgID, userID)
			if err != nil {
				return fmt.Errorf("could not delete affiliation: %w", err)
			}
			if !found {
				return fmt.Errorf("affiliation of user %s vanished mid-removal", uuid.UUID(userID))
			}

			return nil
		},
	}
}

func removeClaimStep(orgID domain.OrganizationID, domainID domain.DomainID) Step {
	return Step{
		Name: "remove claim edge",
		Run: func(ctx context.Context, store graph.AllStore) error {
			found, err := store.DeleteClaim(ctx, orgID, domainID)
			if err != nil {
				return fmt.Errorf("could not delete claim: %w", err)
			}
			if !found {
				return fmt.Errorf("claim on domain %s vanished mid-removal", uuid.UUID(domainID))
			}

			return nil
		},
	}
}

// removeOwnershipStep deletes the ownership edge observed during planning.
// The delete is scoped to the owning organization so that an edge handed to a
// different organization after planning fails the step instead of being
// silently removed.
func removeOwnershipStep(domainID domain.DomainID, orgID domain.OrganizationID) Step {
	return Step{
		Name: "remove ownership edge",
		Run: func(ctx context.Context, store graph.AllStore) error {
			found, err := store.DeleteOwnership(ctx, domainID, orgID)
			if err != nil {
				return fmt.Errorf("could not delete ownership: %w", err)
			}
			if !found {
				return fmt.Errorf("ownership of domain %s vanished mid-removal", uuid.UUID(domainID))
			}

			return nil
		},
	}
}

func removeReportStep(domainID domain.DomainID) Step {
	return Step{
		Name: "remove report data",
		Run: func(ctx context.Context, store graph.AllStore) error {
			found, err := store.DeleteReport(ctx, domainID)
			if err != nil {
				return fmt.Errorf("could not delete report: %w", err)
			}
			if !found {
				return fmt.Errorf("report of domain %s vanished mid-removal", uuid.UUID(domainID))
			}

			return nil
		},
	}
}

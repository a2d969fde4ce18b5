package postgres

import (
	"context"
	"fmt"

	"siteguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	affiliationsTable = "affiliations"
	claimsTable       = "claims"
	ownershipsTable   = "ownerships"
	reportsTable      = "reports"
)

func (p *PgSQL) StoreAffiliation(ctx context.Context, aff domain.Affiliation) (*domain.Affiliation, error) {
	var row PgAffiliation
	row.FromDomain(aff)

	var stored PgAffiliation
	found, err := p.Builder.Insert(affiliationsTable).
		Rows(row).
		Returning(&PgAffiliation{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store affiliation into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", affiliationsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) Affiliation(ctx context.Context,
	orgID domain.OrganizationID,
	userID domain.UserID) (*domain.Affiliation, error) {
	var row PgAffiliation
	found, err := p.Builder.From(affiliationsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch affiliation: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountAffiliations(ctx context.Context,
	orgID domain.OrganizationID,
	userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(affiliationsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count affiliations: %w", err)
	}

	return count, nil
}

func (p *PgSQL) DeleteAffiliation(ctx context.Context,
	orgID domain.OrganizationID,
	userID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(affiliationsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete affiliation in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) SetAffiliationOwner(ctx context.Context,
	orgID domain.OrganizationID,
	userID domain.UserID,
	owner bool) (bool, error) {
	res, err := p.Builder.Update(affiliationsTable).
		Set(goqu.Record{"owner": owner}).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update affiliation owner in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

// AffiliatedWithDomain joins the actor's affiliations against the domain's
// claims. One row is enough to prove the actor belongs to a claiming
// organization.
func (p *PgSQL) AffiliatedWithDomain(ctx context.Context,
	userID domain.UserID,
	domainID domain.DomainID) (bool, error) {
	count, err := p.Builder.From(affiliationsTable).
		Join(goqu.T(claimsTable), goqu.On(
			goqu.I(affiliationsTable+".organization_id").Eq(goqu.I(claimsTable+".organization_id")),
		)).
		Where(
			goqu.I(affiliationsTable+".user_id").Eq(uuid.UUID(userID)),
			goqu.I(claimsTable+".domain_id").Eq(uuid.UUID(domainID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count claiming affiliations: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) StoreClaim(ctx context.Context, claim domain.Claim) (*domain.Claim, error) {
	var row PgClaim
	row.FromDomain(claim)

	var stored PgClaim
	found, err := p.Builder.Insert(claimsTable).
		Rows(row).
		Returning(&PgClaim{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store claim into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", claimsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ClaimExists(ctx context.Context,
	orgID domain.OrganizationID,
	domainID domain.DomainID) (bool, error) {
	count, err := p.Builder.From(claimsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("domain_id").Eq(uuid.UUID(domainID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check claim existence: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) CountClaims(ctx context.Context, domainID domain.DomainID) (int64, error) {
	count, err := p.Builder.From(claimsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count claims: %w", err)
	}

	return count, nil
}

func (p *PgSQL) DeleteClaim(ctx context.Context,
	orgID domain.OrganizationID,
	domainID domain.DomainID) (bool, error) {
	res, err := p.Builder.Delete(claimsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("domain_id").Eq(uuid.UUID(domainID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete claim in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) StoreOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error) {
	var row PgOwnership
	row.FromDomain(o)

	var stored PgOwnership
	found, err := p.Builder.Insert(ownershipsTable).
		Rows(row).
		Returning(&PgOwnership{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store ownership into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", ownershipsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) OwnershipByDomain(ctx context.Context, domainID domain.DomainID) (*domain.Ownership, error) {
	var row PgOwnership
	found, err := p.Builder.From(ownershipsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ownership: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteOwnership(ctx context.Context,
	domainID domain.DomainID,
	orgID domain.OrganizationID) (bool, error) {
	res, err := p.Builder.Delete(ownershipsTable).
		Where(
			goqu.I("domain_id").Eq(uuid.UUID(domainID)),
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete ownership in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

// StoreReport upserts the derived report for a domain; a rescan replaces the
// previous aggregate in place.
func (p *PgSQL) StoreReport(ctx context.Context, r domain.Report) (*domain.Report, error) {
	var row PgReport
	row.FromDomain(r)

	var stored PgReport
	found, err := p.Builder.Insert(reportsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain_id", goqu.Record{
			"score":      row.Score,
			"payload":    []byte(row.Payload),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", reportsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ReportByDomain(ctx context.Context, domainID domain.DomainID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteReport(ctx context.Context, domainID domain.DomainID) (bool, error) {
	res, err := p.Builder.Delete(reportsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete report in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

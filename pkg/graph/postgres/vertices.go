package postgres

import (
	"context"
	"fmt"

	"siteguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable         = "users"
	organizationsTable = "organizations"
	domainsTable       = "domains"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", usersTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	var row PgOrganization
	row.FromDomain(org)

	var stored PgOrganization
	found, err := p.Builder.Insert(organizationsTable).
		Rows(row).
		Returning(&PgOrganization{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store organization into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", organizationsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	var row PgOrganization
	found, err := p.Builder.From(organizationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var row PgDomain
	row.FromDomain(d)

	var stored PgDomain
	found, err := p.Builder.Insert(domainsTable).
		Rows(row).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store domain into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", domainsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DomainByFQDN(ctx context.Context, fqdn string) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("fqdn").Eq(fqdn)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by fqdn: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteDomain(ctx context.Context, id domain.DomainID) (bool, error) {
	res, err := p.Builder.Delete(domainsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete domain in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) TouchDomainScannedAt(ctx context.Context, id domain.DomainID) error {
	_, err := p.Builder.Update(domainsTable).
		Set(goqu.Record{
			"last_scanned_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch domain last_scanned_at in pg: %w", err)
	}

	return nil
}

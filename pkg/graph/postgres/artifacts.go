package postgres

import (
	"context"
	"fmt"

	"siteguard/pkg/domain"
	"siteguard/pkg/graph"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	artifactsTable    = "scan_artifacts"
	scanRequestsTable = "scan_requests"
)

func (p *PgSQL) StoreArtifacts(ctx context.Context,
	artifacts ...domain.ScanArtifact) ([]domain.ScanArtifact, error) {
	if len(artifacts) == 0 {
		return nil, nil
	}

	var result []PgArtifact
	if err := p.Builder.Insert(artifactsTable).
		Rows(domainArtifactsToPg(artifacts)).
		Returning(&PgArtifact{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store artifacts into pg: %w", err)
	}

	return pgArtifactsToDomain(result), nil
}

func (p *PgSQL) CountArtifacts(ctx context.Context, domainID domain.DomainID) (int64, error) {
	count, err := p.Builder.From(artifactsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count artifacts: %w", err)
	}

	return count, nil
}

func (p *PgSQL) DeleteArtifacts(ctx context.Context, domainID domain.DomainID) (int64, error) {
	res, err := p.Builder.Delete(artifactsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete artifacts in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

func (p *PgSQL) StoreScanRequest(ctx context.Context, req domain.ScanRequest) (*domain.ScanRequest, error) {
	var row PgScanRequest
	row.FromDomain(req)

	var stored PgScanRequest
	found, err := p.Builder.Insert(scanRequestsTable).
		Rows(row).
		Returning(&PgScanRequest{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store scan request into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", scanRequestsTable)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ScanRequestByID(ctx context.Context, id domain.ScanRequestID) (*domain.ScanRequest, error) {
	var row PgScanRequest
	found, err := p.Builder.From(scanRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateScanRequestsByDomain updates every pending request for the domain.
// updated_at is set automatically; last_error is cleared when an empty string
// is provided.
func (p *PgSQL) UpdateScanRequestsByDomain(ctx context.Context,
	domainID domain.DomainID,
	updates graph.ScanRequestUpdates) error {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	_, err := p.Builder.Update(scanRequestsTable).
		Set(rec).Where(
		goqu.I("domain_id").Eq(uuid.UUID(domainID)),
		goqu.I("status").Eq(string(domain.ScanStatusPending)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update scan requests by domain in pg: %w", err)
	}

	return nil
}

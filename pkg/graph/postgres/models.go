package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"siteguard/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID          uuid.UUID `db:"id" goqu:"skipinsert"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	SuperAdmin  bool      `db:"super_admin"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:          domain.UserID(p.ID),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		SuperAdmin:  p.SuperAdmin,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:          uuid.UUID(u.ID),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		SuperAdmin:  u.SuperAdmin,
		CreatedAt:   u.CreatedAt,
	}
}

type PgOrganization struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	Name      string    `db:"name"`
	Verified  bool      `db:"verified"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgOrganization) ToDomain() *domain.Organization {
	return &domain.Organization{
		ID:        domain.OrganizationID(p.ID),
		Name:      p.Name,
		Verified:  p.Verified,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgOrganization) FromDomain(o domain.Organization) {
	*p = PgOrganization{
		ID:        uuid.UUID(o.ID),
		Name:      o.Name,
		Verified:  o.Verified,
		CreatedAt: o.CreatedAt,
	}
}

type PgDomain struct {
	ID                  uuid.UUID    `db:"id" goqu:"skipinsert"`
	FQDN                string       `db:"fqdn"`
	ScanIntervalSeconds int64        `db:"scan_interval_seconds"`
	LastScannedAt       sql.NullTime `db:"last_scanned_at" goqu:"skipinsert"`
	CreatedAt           time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{
		ID:            domain.DomainID(p.ID),
		FQDN:          p.FQDN,
		ScanInterval:  time.Duration(p.ScanIntervalSeconds) * time.Second,
		LastScannedAt: p.LastScannedAt.Time,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgDomain) FromDomain(d domain.Domain) {
	*p = PgDomain{
		ID:                  uuid.UUID(d.ID),
		FQDN:                d.FQDN,
		ScanIntervalSeconds: int64(d.ScanInterval / time.Second),
		LastScannedAt: sql.NullTime{
			Time:  d.LastScannedAt,
			Valid: !d.LastScannedAt.IsZero(),
		},
		CreatedAt: d.CreatedAt,
	}
}

type PgAffiliation struct {
	OrganizationID uuid.UUID `db:"organization_id"`
	UserID         uuid.UUID `db:"user_id"`
	Permission     string    `db:"permission"`
	Owner          bool      `db:"owner"`
	CreatedAt      time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAffiliation) ToDomain() *domain.Affiliation {
	return &domain.Affiliation{
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		UserID:         domain.UserID(p.UserID),
		Permission:     domain.Permission(p.Permission),
		Owner:          p.Owner,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgAffiliation) FromDomain(a domain.Affiliation) {
	*p = PgAffiliation{
		OrganizationID: uuid.UUID(a.OrganizationID),
		UserID:         uuid.UUID(a.UserID),
		Permission:     string(a.Permission),
		Owner:          a.Owner,
		CreatedAt:      a.CreatedAt,
	}
}

type PgClaim struct {
	OrganizationID uuid.UUID `db:"organization_id"`
	DomainID       uuid.UUID `db:"domain_id"`
	CreatedAt      time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgClaim) ToDomain() *domain.Claim {
	return &domain.Claim{
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		DomainID:       domain.DomainID(p.DomainID),
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgClaim) FromDomain(c domain.Claim) {
	*p = PgClaim{
		OrganizationID: uuid.UUID(c.OrganizationID),
		DomainID:       uuid.UUID(c.DomainID),
		CreatedAt:      c.CreatedAt,
	}
}

type PgOwnership struct {
	DomainID       uuid.UUID `db:"domain_id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	CreatedAt      time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgOwnership) ToDomain() *domain.Ownership {
	return &domain.Ownership{
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		DomainID:       domain.DomainID(p.DomainID),
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgOwnership) FromDomain(o domain.Ownership) {
	*p = PgOwnership{
		DomainID:       uuid.UUID(o.DomainID),
		OrganizationID: uuid.UUID(o.OrganizationID),
		CreatedAt:      o.CreatedAt,
	}
}

type PgReport struct {
	DomainID  uuid.UUID       `db:"domain_id"`
	Score     int             `db:"score"`
	Payload   json.RawMessage `db:"payload"`
	UpdatedAt time.Time       `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() *domain.Report {
	return &domain.Report{
		DomainID:  domain.DomainID(p.DomainID),
		Score:     p.Score,
		Payload:   p.Payload,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgReport) FromDomain(r domain.Report) {
	*p = PgReport{
		DomainID: uuid.UUID(r.DomainID),
		Score:    r.Score,
		Payload:  r.Payload,
	}
}

type PgArtifact struct {
	ID        uuid.UUID       `db:"id" goqu:"skipinsert"`
	DomainID  uuid.UUID       `db:"domain_id"`
	Category  string          `db:"category"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgArtifact) ToDomain() *domain.ScanArtifact {
	return &domain.ScanArtifact{
		ID:        domain.ArtifactID(p.ID),
		DomainID:  domain.DomainID(p.DomainID),
		Category:  domain.ArtifactCategory(p.Category),
		Payload:   p.Payload,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgArtifact) FromDomain(a domain.ScanArtifact) {
	*p = PgArtifact{
		ID:       uuid.UUID(a.ID),
		DomainID: uuid.UUID(a.DomainID),
		Category: string(a.Category),
		Payload:  a.Payload,
	}
}

func domainArtifactsToPg(artifacts []domain.ScanArtifact) []PgArtifact {
	out := make([]PgArtifact, len(artifacts))
	for i := range out {
		out[i].FromDomain(artifacts[i])
	}

	return out
}

func pgArtifactsToDomain(artifacts []PgArtifact) []domain.ScanArtifact {
	out := make([]domain.ScanArtifact, 0, len(artifacts))
	for i := range artifacts {
		out = append(out, *artifacts[i].ToDomain())
	}

	return out
}

type PgScanRequest struct {
	ID          uuid.UUID      `db:"id" goqu:"skipinsert"`
	DomainID    uuid.UUID      `db:"domain_id"`
	RequestedBy uuid.UUID      `db:"requested_by"`
	Status      string         `db:"status"`
	LastError   sql.NullString `db:"last_error" goqu:"skipinsert"`
	CreatedAt   time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgScanRequest) ToDomain() *domain.ScanRequest {
	return &domain.ScanRequest{
		ID:          domain.ScanRequestID(p.ID),
		DomainID:    domain.DomainID(p.DomainID),
		RequestedBy: domain.UserID(p.RequestedBy),
		Status:      domain.ScanStatus(p.Status),
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgScanRequest) FromDomain(r domain.ScanRequest) {
	*p = PgScanRequest{
		ID:          uuid.UUID(r.ID),
		DomainID:    uuid.UUID(r.DomainID),
		RequestedBy: uuid.UUID(r.RequestedBy),
		Status:      string(r.Status),
		LastError: sql.NullString{
			String: r.LastError,
			Valid:  r.LastError != "",
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  r.UpdatedAt,
			Valid: !r.UpdatedAt.IsZero(),
		},
	}
}

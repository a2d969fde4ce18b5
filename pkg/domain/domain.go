package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a tracked domain.
type DomainID uuid.UUID

// Domain is a website tracked by one or more organizations. A domain vertex
// exists exactly as long as at least one organization claims it; removing the
// last claim removes the domain together with its scan artifacts.
type Domain struct {
	// ID is the unique identifier of the domain.
	ID DomainID `json:"id"`
	// FQDN is the fully qualified domain name, unique across the system.
	FQDN string `json:"fqdn"`

	// ScanInterval is how often scheduled scans are dispatched for this domain.
	ScanInterval time.Duration `json:"scanInterval"`
	// LastScannedAt is when the most recent scan finished. Zero when the
	// domain has never been scanned.
	LastScannedAt time.Time `json:"lastScannedAt"`

	// CreatedAt is the time the domain was first claimed.
	CreatedAt time.Time `json:"createdAt"`
}

// Claim is the edge recording that an organization tracks a domain. A domain
// may carry any number of incoming claims.
type Claim struct {
	OrganizationID OrganizationID `json:"organizationId"`
	DomainID       DomainID       `json:"domainId"`

	CreatedAt time.Time `json:"createdAt"`
}

// Ownership is the edge recording which single organization owns a domain's
// aggregated report data. It is distinct from Claim: many organizations may
// claim a domain, but at most one owns its report.
type Ownership struct {
	OrganizationID OrganizationID `json:"organizationId"`
	DomainID       DomainID       `json:"domainId"`

	CreatedAt time.Time `json:"createdAt"`
}

// Report is the derived aggregated-report vertex for a domain, reachable via
// the Ownership edge. It exists iff some organization owns it.
type Report struct {
	DomainID DomainID `json:"domainId"`

	// Score is the aggregated security score computed from the domain's
	// scan artifacts.
	Score int `json:"score"`
	// Payload is the raw aggregated report document.
	Payload json.RawMessage `json:"payload"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// ArtifactCategory identifies the protocol a scan artifact belongs to.
type ArtifactCategory string

// The six artifact categories produced by a full domain scan.
const (
	CategoryTLS        ArtifactCategory = "TLS"
	CategoryHTTPHeader ArtifactCategory = "HTTP_HEADER"
	CategoryDNS        ArtifactCategory = "DNS"
	CategoryMail       ArtifactCategory = "MAIL"
	CategoryContent    ArtifactCategory = "CONTENT"
	CategoryReputation ArtifactCategory = "REPUTATION"
)

// ArtifactCategories lists every category in dispatch order.
func ArtifactCategories() []ArtifactCategory {
	return []ArtifactCategory{
		CategoryTLS,
		CategoryHTTPHeader,
		CategoryDNS,
		CategoryMail,
		CategoryContent,
		CategoryReputation,
	}
}

// ArtifactID uniquely identifies a scan artifact.
type ArtifactID uuid.UUID

// ScanArtifact is a per-protocol scan result vertex linked to a domain. All
// artifacts of a domain are removed together with the domain vertex.
type ScanArtifact struct {
	ID       ArtifactID       `json:"id"`
	DomainID DomainID         `json:"domainId"`

	Category ArtifactCategory `json:"category"`
	// Payload is the raw scanner output for the category.
	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time `json:"createdAt"`
}

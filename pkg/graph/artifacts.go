package graph

import (
	"context"

	"siteguard/pkg/domain"
)

// ArtifactStore defines operations on per-protocol scan artifact vertices.
type ArtifactStore interface {
	// StoreArtifacts inserts one or more artifacts and returns the stored
	// rows including generated fields.
	StoreArtifacts(ctx context.Context, artifacts ...domain.ScanArtifact) ([]domain.ScanArtifact, error)
	// CountArtifacts returns the number of artifacts linked to the domain.
	CountArtifacts(ctx context.Context, domainID domain.DomainID) (int64, error)
	// DeleteArtifacts removes every artifact linked to the domain and returns
	// how many rows were removed.
	DeleteArtifacts(ctx context.Context, domainID domain.DomainID) (int64, error)
}

// ScanRequestUpdates describes the optional fields applied to a scan request
// during an update. Zero-valued fields are left unchanged.
type ScanRequestUpdates struct {
	// Status is the new status to set for the request.
	Status domain.ScanStatus
	// LastError, when provided, sets the last error text. An empty string
	// value clears the stored error.
	LastError *string
}

// ScanRequestStore defines operations on scan request records.
type ScanRequestStore interface {
	// StoreScanRequest inserts a scan request and returns the stored row.
	StoreScanRequest(ctx context.Context, req domain.ScanRequest) (*domain.ScanRequest, error)
	// ScanRequestByID fetches a request by id. Returns nil when not found.
	ScanRequestByID(ctx context.Context, id domain.ScanRequestID) (*domain.ScanRequest, error)
	// UpdateScanRequestsByDomain applies the update set to every pending
	// request for the domain. Used by the dispatch worker when a scan
	// completes or fails.
	UpdateScanRequestsByDomain(ctx context.Context, domainID domain.DomainID, updates ScanRequestUpdates) error
}

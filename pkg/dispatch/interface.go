// Package dispatch defines the abstraction for the external scanning service
// that probes a domain across the artifact categories and returns the raw
// per-category results plus the aggregated report.
package dispatch

import (
	"context"
	"encoding/json"

	"siteguard/pkg/domain"
)

// CategoryResult is the raw scanner output for a single artifact category.
type CategoryResult struct {
	Category domain.ArtifactCategory
	Payload  json.RawMessage
}

// Outcome is the complete result of one domain scan.
type Outcome struct {
	// Score is the aggregated security score computed by the scanning service.
	Score int
	// Report is the aggregated report document.
	Report json.RawMessage
	// Artifacts holds one result per scanned category.
	Artifacts []CategoryResult
}

// Client is the abstraction for scan providers. Implementations run a full
// scan of a domain and return its outcome.
//
//go:generate mockgen -package mockdispatch -source=interface.go -destination=mock/mockdispatch.go *
type Client interface {
	// Scan probes the FQDN across all artifact categories. The call blocks
	// until the provider has finished or ctx is done.
	Scan(ctx context.Context, fqdn string) (*Outcome, error)
}

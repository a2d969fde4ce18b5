package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanRequestID uniquely identifies a scan request. It doubles as the
// subscription token handed back to the caller for result delivery.
type ScanRequestID uuid.UUID

// ScanStatus represents the lifecycle state of a scan request.
type ScanStatus string

const (
	// ScanStatusPending indicates the request has been enqueued but not dispatched yet.
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusCompleted indicates all scanners finished and artifacts are stored.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates dispatching ended with an error; see LastError.
	ScanStatusFailed ScanStatus = "FAILED"
)

// ScanRequest records a single request to scan a domain. The request row is
// inserted in the same transaction as the dispatch job so a token is never
// handed out for a job that was not enqueued.
type ScanRequest struct {
	// ID is the unique identifier and subscription token of the request.
	ID ScanRequestID `json:"id"`
	// DomainID is the domain to be scanned.
	DomainID DomainID `json:"domainId"`
	// RequestedBy is the user who triggered the scan.
	RequestedBy UserID `json:"requestedBy"`

	// Status is the current lifecycle state of the request.
	Status ScanStatus `json:"status"`
	// LastError stores the most recent dispatch error, if any.
	LastError string `json:"-"`

	// CreatedAt is the time the request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the request last changed state.
	UpdatedAt time.Time `json:"updatedAt"`
}

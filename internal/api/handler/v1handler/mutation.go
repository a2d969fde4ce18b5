package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"siteguard/pkg/domain"
	"siteguard/pkg/metrics"
	"siteguard/pkg/serrors"

	"github.com/google/uuid"
)

// ScanRequestResponse is the wire shape of a scan request. The id doubles as
// the token for polling the outcome.
type ScanRequestResponse struct {
	ID          uuid.UUID  `json:"id"`
	DomainID    uuid.UUID  `json:"domainId"`
	RequestedBy uuid.UUID  `json:"requestedBy"`
	Status      string     `json:"status"`
	LastError   string     `json:"lastError,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// DomainScanRequestToV1 converts a domain scan request into its wire shape.
func DomainScanRequestToV1(in *domain.ScanRequest) *ScanRequestResponse {
	out := &ScanRequestResponse{
		ID:          uuid.UUID(in.ID),
		DomainID:    uuid.UUID(in.DomainID),
		RequestedBy: uuid.UUID(in.RequestedBy),
		Status:      string(in.Status),
		LastError:   in.LastError,
		CreatedAt:   in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		out.UpdatedAt = &in.UpdatedAt
	}

	return out
}

// DomainResponse is the wire shape of a domain vertex.
type DomainResponse struct {
	ID            uuid.UUID  `json:"id"`
	FQDN          string     `json:"fqdn"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
}

// DomainToV1 converts a domain vertex into its wire shape.
func DomainToV1(in *domain.Domain) *DomainResponse {
	out := &DomainResponse{
		ID:        uuid.UUID(in.ID),
		FQDN:      in.FQDN,
		CreatedAt: in.CreatedAt,
	}
	if !in.LastScannedAt.IsZero() {
		out.LastScannedAt = &in.LastScannedAt
	}

	return out
}

// DomainRemovalResponse reports a completed domain removal together with the
// removed domain as it was resolved before the mutation ran.
type DomainRemovalResponse struct {
	Status string          `json:"status"`
	Domain *DomainResponse `json:"domain"`
}

// pathUUID extracts a UUID path parameter or reports a bad request.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// finish records the mutation outcome metric and renders the error, if any.
func finish(w http.ResponseWriter, r *http.Request, op string, err error, onOK func()) {
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, serrors.ErrForbidden), errors.Is(err, serrors.ErrUnauthorized):
			outcome = "denied"
		case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrNotFound):
			outcome = "rejected"
		}
		metrics.MutationOutcomes.WithLabelValues(op, outcome).Inc()
		writeError(w, r, err)

		return
	}

	metrics.MutationOutcomes.WithLabelValues(op, "ok").Inc()
	onOK()
}

// RemoveMember removes a user from an organization.
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathUUID(r, "orgID")
	if err != nil {
		writeError(w, r, err)

		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	err = h.deps.Mutator.RemoveUserFromOrg(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.OrganizationID(orgID),
		domain.UserID(userID))
	finish(w, r, "remove_member", err, func() {
		w.WriteHeader(http.StatusNoContent)
	})
}

// RemoveDomain removes a domain from an organization by FQDN.
func (h *Handler) RemoveDomain(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathUUID(r, "orgID")
	if err != nil {
		writeError(w, r, err)

		return
	}
	fqdn := r.PathValue("fqdn")
	if fqdn == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing fqdn"))

		return
	}

	removed, err := h.deps.Mutator.RemoveDomain(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.OrganizationID(orgID),
		fqdn)
	finish(w, r, "remove_domain", err, func() {
		writeJSON(w, http.StatusOK, DomainRemovalResponse{
			Status: "removed",
			Domain: DomainToV1(removed),
		})
	})
}

// TransferOwnershipRequest is the payload for an ownership transfer.
type TransferOwnershipRequest struct {
	TargetUserID uuid.UUID `json:"targetUserId"`
}

// TransferOwnership hands the organization's owner flag to another member.
func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathUUID(r, "orgID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}
	if req.TargetUserID == uuid.Nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing targetUserId"))

		return
	}

	err = h.deps.Mutator.TransferOrgOwnership(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.OrganizationID(orgID),
		domain.UserID(req.TargetUserID))
	finish(w, r, "transfer_ownership", err, func() {
		w.WriteHeader(http.StatusNoContent)
	})
}

// RequestScanRequest is the payload for requesting a domain scan.
type RequestScanRequest struct {
	FQDN string `json:"fqdn"`
}

// RequestScan enqueues a scan of the given domain and returns the pending
// request.
func (h *Handler) RequestScan(w http.ResponseWriter, r *http.Request) {
	var req RequestScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}
	if req.FQDN == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing fqdn"))

		return
	}

	request, err := h.deps.Mutator.RequestScan(r.Context(), GetUserIDFromContext(r.Context()), req.FQDN)
	finish(w, r, "request_scan", err, func() {
		writeJSON(w, http.StatusAccepted, DomainScanRequestToV1(request))
	})
}

// ScanStatus returns the current state of a scan request by its token.
func (h *Handler) ScanStatus(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathUUID(r, "requestID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	request, err := h.deps.Mutator.ScanRequestStatus(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.ScanRequestID(requestID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainScanRequestToV1(request))
}

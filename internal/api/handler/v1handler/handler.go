// Package v1handler implements the v1 REST endpoints on top of the mutation
// engine. Handlers stay thin: they decode identifiers and payloads, call the
// mutator and render the outcome; every policy decision lives below them.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"siteguard/internal/mutator"
	"siteguard/pkg/logger"
	"siteguard/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Deps bundles the dependencies the v1 handlers need.
type Deps struct {
	Mutator mutator.Mutator
}

type Handler struct {
	deps Deps

	requests otelmetric.Int64Counter
}

// New constructs the v1 handler set. The meter provider instruments every
// route with a request counter labeled by route and status.
func New(deps Deps, mp otelmetric.MeterProvider) (*Handler, error) {
	meter := mp.Meter("siteguard/api/v1")
	requests, err := meter.Int64Counter("http_server_requests_total",
		otelmetric.WithDescription("Number of v1 API requests, by route and status code."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Handler{deps: deps, requests: requests}, nil
}

// Mux returns the route table for the v1 API. All routes require a valid
// bearer token; the security middleware is applied by the server.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("DELETE /v1/organizations/{orgID}/members/{userID}",
		h.instrument("remove_member", http.HandlerFunc(h.RemoveMember)))
	mux.Handle("DELETE /v1/organizations/{orgID}/domains/{fqdn}",
		h.instrument("remove_domain", http.HandlerFunc(h.RemoveDomain)))
	mux.Handle("POST /v1/organizations/{orgID}/ownership-transfers",
		h.instrument("transfer_ownership", http.HandlerFunc(h.TransferOwnership)))
	mux.Handle("POST /v1/scans",
		h.instrument("request_scan", http.HandlerFunc(h.RequestScan)))
	mux.Handle("GET /v1/scans/{requestID}",
		h.instrument("scan_status", http.HandlerFunc(h.ScanStatus)))

	return mux
}

// instrument wraps a route with the per-route request counter.
func (h *Handler) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.requests.Add(r.Context(), 1, otelmetric.WithAttributes(
			attribute.String("route", route),
			attribute.Int("status", rec.status),
		))
	})
}

// statusRecorder captures the final status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// errorBody is the uniform error payload: a semantic code plus an optional
// machine-readable reason key. Internal failure details never leave the
// server; they are logged where they happen.
type errorBody struct {
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

// writeJSON renders v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error's semantic kind onto an HTTP status and renders
// the uniform error payload.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *serrors.Error

	status := http.StatusInternalServerError
	code := "INTERNAL"
	reason := ""

	if errors.As(err, &se) {
		if se.Kind() != nil {
			code = se.Kind().Error()
		}
		reason = se.Reason()
		status = kindStatus(se.Kind())
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	}

	writeJSON(w, status, errorBody{Code: code, Reason: reason})
}

func kindStatus(k serrors.Kind) int {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

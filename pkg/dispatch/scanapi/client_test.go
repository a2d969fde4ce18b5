package scanapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"siteguard/pkg/dispatch/scanapi"
	"siteguard/pkg/domain"
	"siteguard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *scanapi.Client {
	return scanapi.New(&http.Client{Transport: fn}, "https://scanapi.test", "test-token")
}

func TestClient_Scan_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "scanapi.test", r.URL.Host)
		require.Equal(t, "/v1/scan", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-token", r.Header.Get("Api-Key"))

		var req struct {
			FQDN       string   `json:"fqdn"`
			Categories []string `json:"categories"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "example.com", req.FQDN)
		require.Len(t, req.Categories, 6)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(`{
				"score": 87,
				"report": {"grade": "B"},
				"results": [
					{"category": "TLS", "payload": {"protocols": ["TLSv1.3"]}},
					{"category": "DNS", "payload": {"dnssec": true}}
				]
			}`)),
		}, nil
	})

	out, err := c.Scan(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, 87, out.Score)
	require.JSONEq(t, `{"grade": "B"}`, string(out.Report))
	require.Len(t, out.Artifacts, 2)
	require.Equal(t, domain.CategoryTLS, out.Artifacts[0].Category)
	require.Equal(t, domain.CategoryDNS, out.Artifacts[1].Category)
}

func TestClient_Scan_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.Scan(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
}

func TestClient_Scan_serverError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("boom")),
		}, nil
	})

	_, err := c.Scan(context.Background(), "example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "scan failed")
}

func TestClient_Scan_unknownCategory(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"score": 1, "report": {}, "results": [{"category": "QUANTUM", "payload": {}}]}`)),
		}, nil
	})

	_, err := c.Scan(context.Background(), "example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown artifact category")
}

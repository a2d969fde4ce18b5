// Package scanapi provides a dispatch.Client implementation backed by the
// internal scanning service's REST API.
package scanapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"siteguard/pkg/dispatch"
	"siteguard/pkg/domain"
	"siteguard/pkg/serrors"
)

// Client talks to the scanning service's REST API and fulfills the
// dispatch.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the scanning service
	baseURL    string       // baseURL is the root endpoint, without a trailing slash
	token      string       // token is the API key for the scanning service
}

// Scan submits the FQDN for a full scan and decodes the outcome. The service
// runs all categories in one synchronous call; per-category payloads are kept
// as raw JSON and never interpreted here.
func (c *Client) Scan(ctx context.Context, fqdn string) (*dispatch.Outcome, error) {
	type scanReq struct {
		FQDN       string   `json:"fqdn"`
		Categories []string `json:"categories"`
	}

	categories := make([]string, 0, len(domain.ArtifactCategories()))
	for _, category := range domain.ArtifactCategories() {
		categories = append(categories, string(category))
	}

	bodyBytes, err := json.Marshal(scanReq{FQDN: fqdn, Categories: categories})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/scan",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scan failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var scanResp struct {
		Score  int             `json:"score"`
		Report json.RawMessage `json:"report"`
		Results []struct {
			Category string          `json:"category"`
			Payload  json.RawMessage `json:"payload"`
		} `json:"results"`
	}
	if err := json.Unmarshal(b, &scanResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	out := &dispatch.Outcome{
		Score:  scanResp.Score,
		Report: scanResp.Report,
	}
	for _, result := range scanResp.Results {
		category := domain.ArtifactCategory(result.Category)
		if !knownCategory(category) {
			return nil, fmt.Errorf("unknown artifact category %q in response", result.Category)
		}
		out.Artifacts = append(out.Artifacts, dispatch.CategoryResult{
			Category: category,
			Payload:  result.Payload,
		})
	}

	return out, nil
}

func knownCategory(c domain.ArtifactCategory) bool {
	for _, known := range domain.ArtifactCategories() {
		if c == known {
			return true
		}
	}

	return false
}

// Ensure Client conforms to the dispatch.Client interface at compile time.
var _ dispatch.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, base URL and
// API token to interact with the scanning service.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

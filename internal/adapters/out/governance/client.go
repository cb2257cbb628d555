// Package governance provides the HTTP client for the governance oracle,
// the external service that decides which actors are approved for
// privileged operations.
package governance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
)

// Client asks the governance oracle whether an actor is approved. Any
// transport failure or non-OK response surfaces as an error; callers fail
// closed on errors rather than assuming approval.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a governance client for the oracle at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type approvalResponse struct {
	Approved bool `json:"approved"`
}

// IsApproved reports whether the actor is governance approved.
func (c *Client) IsApproved(ctx context.Context, actor kernel.Identity) (bool, error) {
	url := fmt.Sprintf("%s/api/v1/approvals/%d", c.baseURL, actor)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("governance oracle unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("governance oracle returned status %d", resp.StatusCode)
	}

	var approval approvalResponse
	if err = json.NewDecoder(resp.Body).Decode(&approval); err != nil {
		return false, fmt.Errorf("governance oracle response is malformed: %w", err)
	}

	return approval.Approved, nil
}

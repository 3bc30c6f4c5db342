// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/weftworks/provisioning-service/internal/types"
	"github.com/weftworks/provisioning-service/internal/validation"
	"github.com/weftworks/provisioning-service/pkg/provisioner"
)

// httpSignupClient provisions through a running service's signup endpoint
// instead of wiring the database directly.
type httpSignupClient struct {
	endpoint string
	client   *http.Client
}

// Ensure interface compliance
var _ provisioner.ServiceInterface = (*httpSignupClient)(nil)

func newHTTPSignupClient(endpoint string) *httpSignupClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	// remove trailing slash
	endpoint = strings.TrimSuffix(endpoint, "/")

	return &httpSignupClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Minute},
	}
}

func (c *httpSignupClient) Provision(ctx context.Context, req *types.SignupRequest) (*types.Tenant, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v0/signup", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeSignupError(resp)
	}

	var out provisioner.SignupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if out.Tenant == nil {
		return nil, fmt.Errorf("malformed response: missing tenant")
	}

	return &types.Tenant{
		ID:        out.Tenant.ID,
		Name:      out.Tenant.Name,
		Subdomain: out.Tenant.Subdomain,
		Schema:    out.Tenant.Schema,
		Active:    out.Tenant.Active,
		CreatedAt: out.Tenant.CreatedAt,
	}, nil
}

// decodeSignupError maps the service's error envelope back onto the errors
// the direct path returns, so command output is the same either way.
func decodeSignupError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api error (status %d)", resp.StatusCode)
	}

	var envelope provisioner.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode == http.StatusConflict {
		return provisioner.ErrSubdomainTaken
	}
	if len(envelope.Errors) > 0 {
		return validation.FieldErrors(envelope.Errors)
	}

	return fmt.Errorf("api error (status %d): %s", resp.StatusCode, envelope.Message)
}

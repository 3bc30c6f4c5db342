// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import "time"

// TenantResponse is the catalog row as rendered to API callers.
type TenantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	Schema    string    `json:"schema"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfirmationResponse carries what the signup page renders after a
// successful provisioning run.
type ConfirmationResponse struct {
	CompanyName string `json:"company_name"`
	URL         string `json:"url"`
	AdminEmail  string `json:"admin_email"`
	PlanLabel   string `json:"plan_label"`
}

type SignupResponse struct {
	Status       int                   `json:"status"`
	Tenant       *TenantResponse       `json:"tenant"`
	Confirmation *ConfirmationResponse `json:"confirmation"`
}

// ErrorResponse reports a failed signup. Errors maps field names to messages
// and Values echoes the submitted non-secret fields so the form can be
// redisplayed as the user filled it in.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Values  map[string]string `json:"values,omitempty"`
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is the catalog record for a provisioned tenant environment.
type Tenant struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Subdomain string    `db:"subdomain"`
	Schema    string    `db:"schema_name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

// AdminUser is the first user of a tenant. It lives inside the tenant's own
// schema and is removed only when the schema itself is dropped.
type AdminUser struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	TenantID     int64     `db:"tenant_id"`
	Role         string    `db:"role"`
	Plan         string    `db:"plan"`
	CreatedAt    time.Time `db:"created_at"`
}

// TenantSetting is a key/value pair stored in the tenant's own schema.
type TenantSetting struct {
	ID        int64     `db:"id"`
	TenantID  int64     `db:"tenant_id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

type SignupRequest struct {
	CompanyName          string `json:"company_name" validate:"required,max=255"`
	Subdomain            string `json:"subdomain" validate:"required,max=50,subdomain"`
	AdminName            string `json:"admin_name" validate:"required,max=255"`
	AdminEmail           string `json:"admin_email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Plan                 string `json:"plan" validate:"required,oneof=free basic pro enterprise"`
}

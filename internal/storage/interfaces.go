// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/weftworks/provisioning-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

// TenantStorageInterface writes rows inside a tenant's own schema. The runner
// is the caller's scoped connection, already pinned to the target schema.
type TenantStorageInterface interface {
	CreateAdminUser(ctx context.Context, runner sq.BaseRunner, u *types.AdminUser) (*types.AdminUser, error)
	ListAdminUsers(ctx context.Context, runner sq.BaseRunner) ([]*types.AdminUser, error)
	CreateSettings(ctx context.Context, runner sq.BaseRunner, settings []*types.TenantSetting) error
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/tenantdb"
	"github.com/weftworks/provisioning-service/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, req *types.SignupRequest) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, tenant *types.Tenant) (*types.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

type TenantStorageInterface interface {
	CreateAdminUser(ctx context.Context, runner sq.BaseRunner, user *types.AdminUser) (*types.AdminUser, error)
	CreateSettings(ctx context.Context, runner sq.BaseRunner, settings []*types.TenantSetting) error
}

type RegistryInterface interface {
	Exists(ctx context.Context, schemaName string) (bool, error)
	Create(ctx context.Context, schemaName string) error
	Drop(ctx context.Context, schemaName string) error
}

type DirectorInterface interface {
	Open(ctx context.Context, schema string) (*tenantdb.Binding, error)
}

type MigratorInterface interface {
	ApplyTenant(ctx context.Context, conn *sql.DB) error
}

type HasherInterface interface {
	Hash(password string) (string, error)
}

type DBClientInterface interface {
	BeginTx(ctx context.Context) (context.Context, db.TxInterface, error)
}

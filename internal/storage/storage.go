// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// CreateTenant inserts the catalog row for a tenant. The id is allocated by
// the database; a unique violation on the subdomain or schema name maps to
// ErrDuplicateKey.
func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	var newTenant types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("name", "subdomain", "schema_name", "active").
		Values(t.Name, t.Subdomain, t.Schema, t.Active).
		Suffix("RETURNING id, name, subdomain, schema_name, active, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.Subdomain, &newTenant.Schema, &newTenant.Active, &newTenant.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySubdomain")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "subdomain", "schema_name", "active", "created_at").
		From("tenants").
		Where(sq.Eq{"subdomain": subdomain}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Subdomain, &t.Schema, &t.Active, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "subdomain", "schema_name", "active", "created_at").
		From("tenants").
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Subdomain, &t.Schema, &t.Active, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

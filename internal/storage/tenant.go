// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/internal/types"
)

var _ TenantStorageInterface = (*TenantStorage)(nil)

// TenantStorage seeds rows inside a freshly migrated tenant schema. It holds
// no connection of its own: every call receives the scoped runner for the
// schema being provisioned.
type TenantStorage struct {
	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewTenantStorage(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TenantStorage {
	s := new(TenantStorage)

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *TenantStorage) statement(runner sq.BaseRunner) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(runner)
}

func (s *TenantStorage) CreateAdminUser(ctx context.Context, runner sq.BaseRunner, u *types.AdminUser) (*types.AdminUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TenantStorage.CreateAdminUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var created types.AdminUser
	err = s.statement(runner).
		Insert("users").
		Columns("id", "name", "email", "password_hash", "tenant_id", "role", "plan").
		Values(id.String(), u.Name, u.Email, u.PasswordHash, u.TenantID, u.Role, u.Plan).
		Suffix("RETURNING id, name, email, password_hash, tenant_id, role, plan, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.TenantID, &created.Role, &created.Plan, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert admin user: %w", err)
	}

	return &created, nil
}

// ListAdminUsers returns the users present in the tenant schema the runner is
// bound to, oldest first.
func (s *TenantStorage) ListAdminUsers(ctx context.Context, runner sq.BaseRunner) ([]*types.AdminUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TenantStorage.ListAdminUsers")
	defer span.End()

	rows, err := s.statement(runner).
		Select("id", "name", "email", "password_hash", "tenant_id", "role", "plan", "created_at").
		From("users").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.AdminUser
	for rows.Next() {
		var u types.AdminUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.TenantID, &u.Role, &u.Plan, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// CreateSettings inserts all settings in a single statement. Provisioning is
// single-writer per tenant, so per-key upsert handling is not needed here.
func (s *TenantStorage) CreateSettings(ctx context.Context, runner sq.BaseRunner, settings []*types.TenantSetting) error {
	ctx, span := s.tracer.Start(ctx, "storage.TenantStorage.CreateSettings")
	defer span.End()

	if len(settings) == 0 {
		return nil
	}

	query := s.statement(runner).
		Insert("settings").
		Columns("tenant_id", "key", "value")

	for _, setting := range settings {
		query = query.Values(setting.TenantID, setting.Key, setting.Value)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert settings: %w", err)
	}

	return nil
}

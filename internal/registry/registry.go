// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
)

var _ RegistryInterface = (*Registry)(nil)

// Registry owns the physical schema namespace: existence checks against
// catalog-level metadata and the schema DDL itself.
type Registry struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRegistry(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registry {
	r := new(Registry)

	r.db = c

	r.logger = logger
	r.tracer = tracer
	r.monitor = monitor

	return r
}

// Exists reports whether a schema literally named schemaName is present.
// The name must already be fully normalized; the lookup is exact.
// Infrastructure errors surface as errors, never as "does not exist".
func (r *Registry) Exists(ctx context.Context, schemaName string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.Exists")
	defer span.End()

	var one int
	err := r.db.Statement(ctx).
		Select("1").
		From("information_schema.schemata").
		Where(sq.Eq{"schema_name": schemaName}).
		QueryRowContext(ctx).
		Scan(&one)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check schema existence: %w", err)
	}

	return true, nil
}

// Create issues the schema DDL. DDL commits on its own, outside any catalog
// transaction; a rollback there leaves the schema standing, which is what the
// compensating Drop is for. Encoding and collation are inherited from the
// catalog database, Postgres does not set them per schema.
func (r *Registry) Create(ctx context.Context, schemaName string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.Create")
	defer span.End()

	query := fmt.Sprintf("CREATE SCHEMA %s", pgx.Identifier{schemaName}.Sanitize())
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema %q: %w", schemaName, err)
	}

	r.logger.Debugf("created schema %q", schemaName)
	return nil
}

// Drop removes the schema and everything inside it.
func (r *Registry) Drop(ctx context.Context, schemaName string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.Drop")
	defer span.End()

	query := fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", pgx.Identifier{schemaName}.Sanitize())
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop schema %q: %w", schemaName, err)
	}

	r.logger.Debugf("dropped schema %q", schemaName)
	return nil
}

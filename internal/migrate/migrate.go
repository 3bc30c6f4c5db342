// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/migrations"
)

var _ RunnerInterface = (*Runner)(nil)

// Runner applies the embedded, versioned migration sets to a target
// connection. It holds no connection of its own.
type Runner struct {
	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRunner(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Runner {
	r := new(Runner)

	r.logger = logger
	r.tracer = tracer
	r.monitor = monitor

	return r
}

// ApplyTenant materializes a tenant's structural schema through conn. The
// connection's search_path decides the target schema, goose's version table
// included, so the catalog schema is never touched here.
func (r *Runner) ApplyTenant(ctx context.Context, conn *sql.DB) error {
	ctx, span := r.tracer.Start(ctx, "migrate.Runner.ApplyTenant")
	defer span.End()

	return r.apply(ctx, conn, migrations.Tenant())
}

// ApplyCatalog brings the shared catalog schema up to date.
func (r *Runner) ApplyCatalog(ctx context.Context, conn *sql.DB) error {
	ctx, span := r.tracer.Start(ctx, "migrate.Runner.ApplyCatalog")
	defer span.End()

	return r.apply(ctx, conn, migrations.Catalog())
}

func (r *Runner) apply(ctx context.Context, conn *sql.DB, fsys fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, conn, fsys, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, result := range results {
		r.logger.Debugf("applied migration %s in %s", result.Source.Path, result.Duration)
	}

	return nil
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
)

var _ DirectorInterface = (*Director)(nil)

// Binding is a connection handle pinned to one tenant schema.
type Binding struct {
	db     *sql.DB
	schema string
}

func NewBinding(db *sql.DB, schema string) *Binding {
	return &Binding{db: db, schema: schema}
}

func (b *Binding) DB() *sql.DB {
	return b.db
}

func (b *Binding) Schema() string {
	return b.schema
}

func (b *Binding) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Director hands out connections pinned to tenant schemas. Open gives each
// caller its own scoped handle; Rebind maintains named long-lived handles for
// operational tooling.
type Director struct {
	dsn string

	mu       sync.Mutex
	bindings map[string]*Binding

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewDirector(dsn string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Director {
	d := new(Director)

	d.dsn = dsn
	d.bindings = make(map[string]*Binding)

	d.logger = logger
	d.tracer = tracer
	d.monitor = monitor

	return d
}

// Open returns a fresh connection handle whose search_path is pinned to
// schema. Each provisioning operation gets its own handle, nothing is shared
// between concurrent operations. The caller closes it.
func (d *Director) Open(ctx context.Context, schema string) (*Binding, error) {
	ctx, span := d.tracer.Start(ctx, "tenantdb.Director.Open")
	defer span.End()

	cfg, err := pgx.ParseConfig(d.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	cfg.RuntimeParams["search_path"] = schema

	conn := stdlib.OpenDB(*cfg)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to schema %q: %w", schema, err)
	}

	return &Binding{db: conn, schema: schema}, nil
}

// Rebind atomically repoints the named logical handle at schema and closes
// the handle's previous connection, discarding anything pooled against the
// old schema. Rebinding to the current target is a no-op. Calls serialize,
// two rebinds of the same name cannot interleave.
func (d *Director) Rebind(ctx context.Context, logicalName, schema string) (*Binding, error) {
	ctx, span := d.tracer.Start(ctx, "tenantdb.Director.Rebind")
	defer span.End()

	d.mu.Lock()
	defer d.mu.Unlock()

	if current, ok := d.bindings[logicalName]; ok && current.schema == schema {
		return current, nil
	}

	binding, err := d.Open(ctx, schema)
	if err != nil {
		return nil, err
	}

	if previous, ok := d.bindings[logicalName]; ok {
		if err := previous.Close(); err != nil {
			d.logger.Warnf("failed to close previous connection for %q: %v", logicalName, err)
		}
	}

	d.bindings[logicalName] = binding
	d.logger.Debugf("rebound logical connection %q to schema %q", logicalName, schema)

	return binding, nil
}

// Close closes every named binding. Scoped handles from Open are owned and
// closed by their callers.
func (d *Director) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name, binding := range d.bindings {
		if err := binding.Close(); err != nil {
			d.logger.Warnf("failed to close connection for %q: %v", name, err)
		}
		delete(d.bindings, name)
	}
}

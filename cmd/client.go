// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/weftworks/provisioning-service/internal/config"
	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/hash"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/migrate"
	"github.com/weftworks/provisioning-service/internal/monitoring/prometheus"
	"github.com/weftworks/provisioning-service/internal/registry"
	"github.com/weftworks/provisioning-service/internal/storage"
	"github.com/weftworks/provisioning-service/internal/tenantdb"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/pkg/provisioner"
)

// backend bundles the directly wired components the CLI commands work against.
type backend struct {
	specs         *config.EnvSpec
	service       *provisioner.Service
	storage       *storage.Storage
	tenantStorage *storage.TenantStorage
	director      *tenantdb.Director
	close         func()
}

// getBackend wires the same components serve uses against the configured
// database, sourced from the same environment variables.
func getBackend() (*backend, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	monitor := prometheus.NewMonitor("provisioning-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	tenantStore := storage.NewTenantStorage(tracer, monitor, logger)
	director := tenantdb.NewDirector(specs.DSN, tracer, monitor, logger)

	service := provisioner.NewService(
		dbClient,
		s,
		tenantStore,
		registry.NewRegistry(dbClient, tracer, monitor, logger),
		director,
		migrate.NewRunner(tracer, monitor, logger),
		hash.NewHasher(nil),
		tracer,
		monitor,
		logger,
	)

	return &backend{
		specs:         specs,
		service:       service,
		storage:       s,
		tenantStorage: tenantStore,
		director:      director,
		close: func() {
			director.Close()
			dbClient.Close()
			logger.Sync()
		},
	}, nil
}

// getProvisioner returns a provisioning backend and a closure to release its
// resources. It talks to a running service when --http-endpoint is set and
// wires the database directly otherwise. The returned spec is nil on the
// HTTP path.
func getProvisioner() (func(), provisioner.ServiceInterface, *config.EnvSpec, error) {
	if httpEndpoint != "" {
		return func() {}, newHTTPSignupClient(httpEndpoint), nil, nil
	}

	b, err := getBackend()
	if err != nil {
		return nil, nil, nil, err
	}

	return b.close, b.service, b.specs, nil
}

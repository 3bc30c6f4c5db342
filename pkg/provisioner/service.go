// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/storage"
	"github.com/weftworks/provisioning-service/internal/tenantdb"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/internal/types"
	"github.com/weftworks/provisioning-service/internal/validation"
	"github.com/weftworks/provisioning-service/pkg/plan"
)

const adminRole = "admin"

type Service struct {
	db            DBClientInterface
	storage       StorageInterface
	tenantStorage TenantStorageInterface
	registry      RegistryInterface
	director      DirectorInterface
	migrator      MigratorInterface
	hasher        HasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	dbClient DBClientInterface,
	storage StorageInterface,
	tenantStorage TenantStorageInterface,
	registry RegistryInterface,
	director DirectorInterface,
	migrator MigratorInterface,
	hasher HasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		db:            dbClient,
		storage:       storage,
		tenantStorage: tenantStorage,
		registry:      registry,
		director:      director,
		migrator:      migrator,
		hasher:        hasher,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Provision creates a tenant end to end: schema, catalog row, migrated
// tables, admin user and default settings. It either completes fully or
// leaves nothing behind. The returned tenant is the committed catalog row.
func (s *Service) Provision(ctx context.Context, req *types.SignupRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.Provision")
	defer span.End()

	slug := NormalizeSubdomain(req.Subdomain)
	schemaName := SchemaName(slug)

	var (
		tenant  *types.Tenant
		binding *tenantdb.Binding
		txCtx   context.Context
		tx      db.TxInterface
	)

	steps := []step{
		{
			name: StateValidated,
			run: func(ctx context.Context) error {
				if slug == "" {
					return validation.FieldErrors{"subdomain": "must contain at least one letter or number"}
				}

				if !plan.Known(req.Plan) {
					s.logger.Warnf("unknown plan %q, falling back to %s tier limits", req.Plan, plan.Free)
				}

				return nil
			},
		},
		{
			name: StateSchemaChecked,
			run: func(ctx context.Context) error {
				exists, err := s.registry.Exists(ctx, schemaName)
				if err != nil {
					return err
				}

				if exists {
					return ErrSubdomainTaken
				}

				return nil
			},
		},
		{
			name: StateSchemaCreated,
			run: func(ctx context.Context) error {
				if err := s.registry.Create(ctx, schemaName); err != nil {
					// Lost the race against a concurrent signup for the same name.
					if storage.IsDuplicateSchemaError(err) {
						return ErrSubdomainTaken
					}

					return err
				}

				return nil
			},
			undo: func(ctx context.Context) error {
				if err := s.registry.Drop(ctx, schemaName); err != nil {
					s.logger.Security().SchemaOrphaned(schemaName)
					s.monitor.IncOrphanedSchema()
					return fmt.Errorf("failed to drop schema %q: %w", schemaName, err)
				}

				s.logger.Security().SchemaCompensated(schemaName)
				return nil
			},
		},
		{
			name: StateTenantRecorded,
			run: func(ctx context.Context) error {
				var err error
				txCtx, tx, err = s.db.BeginTx(ctx)
				if err != nil {
					return fmt.Errorf("failed to begin catalog transaction: %w", err)
				}

				tenant, err = s.storage.CreateTenant(txCtx, &types.Tenant{
					Name:      req.CompanyName,
					Subdomain: slug,
					Schema:    schemaName,
					Active:    true,
				})
				if err != nil {
					// Keep the step atomic, the transaction opened above must not
					// outlive its failure.
					if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
						s.logger.Errorf("failed to roll back catalog transaction: %v", rbErr)
					}

					if errors.Is(err, storage.ErrDuplicateKey) {
						return ErrSubdomainTaken
					}

					return err
				}

				return nil
			},
			undo: func(ctx context.Context) error {
				if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
					return fmt.Errorf("failed to roll back catalog transaction: %w", err)
				}

				return nil
			},
		},
		{
			name: StateConnectionBound,
			run: func(ctx context.Context) error {
				var err error
				binding, err = s.director.Open(ctx, schemaName)
				return err
			},
			undo: func(ctx context.Context) error {
				if err := binding.Close(); err != nil {
					return fmt.Errorf("failed to release tenant connection: %w", err)
				}

				return nil
			},
		},
		{
			name: StateMigrated,
			run: func(ctx context.Context) error {
				return s.migrator.ApplyTenant(ctx, binding.DB())
			},
		},
		{
			name: StateAdminSeeded,
			run: func(ctx context.Context) error {
				hashed, err := s.hasher.Hash(req.Password)
				if err != nil {
					return fmt.Errorf("failed to hash admin password: %w", err)
				}

				_, err = s.tenantStorage.CreateAdminUser(ctx, binding.DB(), &types.AdminUser{
					Name:         req.AdminName,
					Email:        req.AdminEmail,
					PasswordHash: hashed,
					TenantID:     tenant.ID,
					Role:         adminRole,
					Plan:         req.Plan,
				})
				return err
			},
		},
		{
			name: StateSettingsSeeded,
			run: func(ctx context.Context) error {
				return s.tenantStorage.CreateSettings(ctx, binding.DB(), defaultSettings(tenant, req.Plan))
			},
		},
		{
			name: StateCommitted,
			run: func(ctx context.Context) error {
				if err := tx.Commit(); err != nil {
					return fmt.Errorf("failed to commit catalog transaction: %w", err)
				}

				return nil
			},
		},
	}

	if err := runSaga(ctx, steps); err != nil {
		s.reportFailure(err)
		return nil, err
	}

	// The scoped handle served its purpose, from here on the tenant is reached
	// through regular request routing.
	if err := binding.Close(); err != nil {
		s.logger.Warnf("failed to release tenant connection for %q: %v", schemaName, err)
	}

	s.monitor.IncTenantProvisioned(req.Plan)
	s.logger.Security().TenantProvisioned(tenant.ID, tenant.Subdomain, req.AdminEmail)

	return tenant, nil
}

// reportFailure feeds the operational counter and log. User-correctable
// failures, a taken subdomain or a rejected field, stay off both.
func (s *Service) reportFailure(err error) {
	var fieldErrs validation.FieldErrors
	if errors.Is(err, ErrSubdomainTaken) || errors.As(err, &fieldErrs) {
		return
	}

	var stepErr *ProvisioningError
	if errors.As(err, &stepErr) {
		s.monitor.IncProvisioningFailure(stepErr.Step)
	}

	s.logger.Errorf("tenant provisioning failed: %v", err)
}

func defaultSettings(tenant *types.Tenant, planID string) []*types.TenantSetting {
	limits := plan.LimitsFor(planID)

	return []*types.TenantSetting{
		{TenantID: tenant.ID, Key: "company_name", Value: tenant.Name},
		{TenantID: tenant.ID, Key: "plan", Value: planID},
		{TenantID: tenant.ID, Key: "max_users", Value: limits.MaxUsersString()},
		{TenantID: tenant.ID, Key: "storage_limit", Value: limits.StorageLimit},
		{TenantID: tenant.ID, Key: "created_at", Value: tenant.CreatedAt.UTC().Format(time.RFC3339)},
	}
}

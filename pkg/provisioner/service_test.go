// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/weftworks/provisioning-service/internal/db"
	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/storage"
	"github.com/weftworks/provisioning-service/internal/tenantdb"
	"github.com/weftworks/provisioning-service/internal/types"
	"github.com/weftworks/provisioning-service/internal/validation"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioner -destination ./mock_provisioner.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioner -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioner -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioner -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

// fakeTx satisfies db.TxInterface so tests can count commits and rollbacks.
type fakeTx struct {
	commitErr   error
	rollbackErr error
	commits     int
	rollbacks   int
}

func (f *fakeTx) Commit() error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rollbacks++
	return f.rollbackErr
}

func (f *fakeTx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

// stubConnector yields *sql.DB handles that never connect. Distinct handles
// let a test tell which schema's binding a write went through.
type stubConnector struct{}

func (stubConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("stub connector does not connect")
}

func (stubConnector) Driver() driver.Driver { return nil }

type provisionMocks struct {
	db            *MockDBClientInterface
	storage       *MockStorageInterface
	tenantStorage *MockTenantStorageInterface
	registry      *MockRegistryInterface
	director      *MockDirectorInterface
	migrator      *MockMigratorInterface
	hasher        *MockHasherInterface
	monitor       *MockMonitorInterface
	logger        *MockLoggerInterface
	tx            *fakeTx
}

func TestService_Provision(t *testing.T) {
	const schemaName = "tenant_acme-corp"

	createdTenant := &types.Tenant{
		ID:        7,
		Name:      "Acme Corp",
		Subdomain: "acme-corp",
		Schema:    schemaName,
		Active:    true,
		CreatedAt: time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC),
	}

	migErr := errors.New("migration exploded")
	dropErr := errors.New("drop refused")
	commitErr := errors.New("commit refused")

	baseRequest := func() *types.SignupRequest {
		return &types.SignupRequest{
			CompanyName:          "Acme Corp",
			Subdomain:            "Acme Corp",
			AdminName:            "Ada Lovelace",
			AdminEmail:           "ada@acme.test",
			Password:             "s3cret-passw0rd",
			PasswordConfirmation: "s3cret-passw0rd",
			Plan:                 "pro",
		}
	}

	testCases := []struct {
		name          string
		request       func() *types.SignupRequest
		tx            *fakeTx
		setupMocks    func(*provisionMocks)
		wantTenant    bool
		wantErr       func(*testing.T, error)
		wantCommits   int
		wantRollbacks int
	}{
		{
			name:    "success",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.Name != "Acme Corp" || tenant.Subdomain != "acme-corp" || tenant.Schema != schemaName || !tenant.Active {
							return nil, fmt.Errorf("unexpected tenant row: %+v", tenant)
						}
						return createdTenant, nil
					})
				m.director.EXPECT().Open(gomock.Any(), schemaName).Return(tenantdb.NewBinding(nil, schemaName), nil)
				m.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).Return(nil)
				m.hasher.EXPECT().Hash("s3cret-passw0rd").Return("hashed-password", nil)
				m.tenantStorage.EXPECT().CreateAdminUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sq.BaseRunner, user *types.AdminUser) (*types.AdminUser, error) {
						if user.Role != "admin" || user.PasswordHash != "hashed-password" || user.TenantID != 7 || user.Plan != "pro" {
							return nil, fmt.Errorf("unexpected admin user: %+v", user)
						}
						return user, nil
					})
				m.tenantStorage.EXPECT().CreateSettings(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sq.BaseRunner, settings []*types.TenantSetting) error {
						if len(settings) != 5 {
							return fmt.Errorf("expected 5 settings, got %d", len(settings))
						}
						values := make(map[string]string, len(settings))
						for _, setting := range settings {
							if setting.TenantID != 7 {
								return fmt.Errorf("setting %q has tenant ID %d", setting.Key, setting.TenantID)
							}
							values[setting.Key] = setting.Value
						}
						if values["company_name"] != "Acme Corp" || values["plan"] != "pro" || values["max_users"] != "100" || values["storage_limit"] != "100GB" {
							return fmt.Errorf("unexpected settings: %v", values)
						}
						if _, ok := values["created_at"]; !ok {
							return errors.New("created_at setting missing")
						}
						return nil
					})
				m.monitor.EXPECT().IncTenantProvisioned("pro")
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
			},
			wantTenant:  true,
			wantCommits: 1,
		},
		{
			name:    "subdomain already registered",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(true, nil)
			},
			wantErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrSubdomainTaken) {
					t.Errorf("expected ErrSubdomainTaken, got %v", err)
				}
			},
		},
		{
			name:    "registry check fails",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, errors.New("connection refused"))
				m.monitor.EXPECT().IncProvisioningFailure(StateSchemaChecked)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantErr: func(t *testing.T, err error) {
				if errors.Is(err, ErrSubdomainTaken) {
					t.Error("an infrastructure failure must not read as a taken subdomain")
				}
			},
		},
		{
			name:    "schema creation race",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(
					fmt.Errorf("failed to create schema: %w", &pgconn.PgError{Code: "42P06"}))
			},
			wantErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrSubdomainTaken) {
					t.Errorf("expected ErrSubdomainTaken, got %v", err)
				}
			},
		},
		{
			name:    "catalog insert duplicate drops the schema",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.registry.EXPECT().Drop(gomock.Any(), schemaName).Return(nil)
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
			},
			wantErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrSubdomainTaken) {
					t.Errorf("expected ErrSubdomainTaken, got %v", err)
				}
			},
			wantRollbacks: 1,
		},
		{
			name:    "migration failure rolls everything back",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				m.director.EXPECT().Open(gomock.Any(), schemaName).Return(tenantdb.NewBinding(nil, schemaName), nil)
				m.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).Return(migErr)
				m.registry.EXPECT().Drop(gomock.Any(), schemaName).Return(nil)
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
				m.monitor.EXPECT().IncProvisioningFailure(StateMigrated)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantErr: func(t *testing.T, err error) {
				if !errors.Is(err, migErr) {
					t.Errorf("expected the migration failure, got %v", err)
				}
				var stepErr *ProvisioningError
				if !errors.As(err, &stepErr) || stepErr.Step != StateMigrated {
					t.Errorf("expected failure at %s, got %v", StateMigrated, err)
				}
			},
			wantRollbacks: 1,
		},
		{
			name:    "failed compensation escalates",
			request: baseRequest,
			tx:      &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				m.director.EXPECT().Open(gomock.Any(), schemaName).Return(tenantdb.NewBinding(nil, schemaName), nil)
				m.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).Return(migErr)
				m.registry.EXPECT().Drop(gomock.Any(), schemaName).Return(dropErr)
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
				m.monitor.EXPECT().IncOrphanedSchema()
				m.monitor.EXPECT().IncProvisioningFailure(StateMigrated)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantErr: func(t *testing.T, err error) {
				var compErr *CompensationError
				if !errors.As(err, &compErr) {
					t.Fatalf("expected CompensationError, got %v", err)
				}
				if !errors.Is(compErr.Undo, dropErr) {
					t.Errorf("expected the drop failure as undo cause, got %v", compErr.Undo)
				}
				if !errors.Is(err, migErr) {
					t.Errorf("expected the original migration failure to stay reachable, got %v", err)
				}
			},
			wantRollbacks: 1,
		},
		{
			name:    "commit failure",
			request: baseRequest,
			tx:      &fakeTx{commitErr: commitErr, rollbackErr: sql.ErrTxDone},
			setupMocks: func(m *provisionMocks) {
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				m.director.EXPECT().Open(gomock.Any(), schemaName).Return(tenantdb.NewBinding(nil, schemaName), nil)
				m.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).Return(nil)
				m.hasher.EXPECT().Hash("s3cret-passw0rd").Return("hashed-password", nil)
				m.tenantStorage.EXPECT().CreateAdminUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(&types.AdminUser{}, nil)
				m.tenantStorage.EXPECT().CreateSettings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.registry.EXPECT().Drop(gomock.Any(), schemaName).Return(nil)
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
				m.monitor.EXPECT().IncProvisioningFailure(StateCommitted)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantErr: func(t *testing.T, err error) {
				if !errors.Is(err, commitErr) {
					t.Errorf("expected the commit failure, got %v", err)
				}
			},
			wantCommits:   1,
			wantRollbacks: 1,
		},
		{
			name: "unusable subdomain",
			request: func() *types.SignupRequest {
				req := baseRequest()
				req.Subdomain = "!!! ???"
				return req
			},
			tx:         &fakeTx{},
			setupMocks: func(m *provisionMocks) {},
			wantErr: func(t *testing.T, err error) {
				var fieldErrs validation.FieldErrors
				if !errors.As(err, &fieldErrs) {
					t.Fatalf("expected field errors, got %v", err)
				}
				if fieldErrs["subdomain"] == "" {
					t.Errorf("expected a subdomain field error, got %v", fieldErrs)
				}
			},
		},
		{
			name: "unknown plan falls back to free limits",
			request: func() *types.SignupRequest {
				req := baseRequest()
				req.Plan = "platinum"
				return req
			},
			tx: &fakeTx{},
			setupMocks: func(m *provisionMocks) {
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
				m.registry.EXPECT().Exists(gomock.Any(), schemaName).Return(false, nil)
				m.registry.EXPECT().Create(gomock.Any(), schemaName).Return(nil)
				m.db.EXPECT().BeginTx(gomock.Any()).Return(context.Background(), m.tx, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				m.director.EXPECT().Open(gomock.Any(), schemaName).Return(tenantdb.NewBinding(nil, schemaName), nil)
				m.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).Return(nil)
				m.hasher.EXPECT().Hash("s3cret-passw0rd").Return("hashed-password", nil)
				m.tenantStorage.EXPECT().CreateAdminUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(&types.AdminUser{}, nil)
				m.tenantStorage.EXPECT().CreateSettings(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sq.BaseRunner, settings []*types.TenantSetting) error {
						values := make(map[string]string, len(settings))
						for _, setting := range settings {
							values[setting.Key] = setting.Value
						}
						if values["plan"] != "platinum" || values["max_users"] != "5" || values["storage_limit"] != "1GB" {
							return fmt.Errorf("expected free tier limits for unknown plan, got %v", values)
						}
						return nil
					})
				m.monitor.EXPECT().IncTenantProvisioned("platinum")
				m.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger())
			},
			wantTenant:  true,
			wantCommits: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := &provisionMocks{
				db:            NewMockDBClientInterface(ctrl),
				storage:       NewMockStorageInterface(ctrl),
				tenantStorage: NewMockTenantStorageInterface(ctrl),
				registry:      NewMockRegistryInterface(ctrl),
				director:      NewMockDirectorInterface(ctrl),
				migrator:      NewMockMigratorInterface(ctrl),
				hasher:        NewMockHasherInterface(ctrl),
				monitor:       NewMockMonitorInterface(ctrl),
				logger:        NewMockLoggerInterface(ctrl),
				tx:            tc.tx,
			}
			mockTracer := NewMockTracingInterface(ctrl)

			s := NewService(
				mocks.db,
				mocks.storage,
				mocks.tenantStorage,
				mocks.registry,
				mocks.director,
				mocks.migrator,
				mocks.hasher,
				mockTracer,
				mocks.monitor,
				mocks.logger,
			)

			mockTracer.EXPECT().Start(gomock.Any(), "provisioner.Service.Provision").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			tenant, err := s.Provision(context.Background(), tc.request())

			if tc.wantErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				tc.wantErr(t, err)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.wantTenant && tenant == nil {
				t.Error("expected tenant but got nil")
			}
			if !tc.wantTenant && tenant != nil {
				t.Errorf("expected no tenant, got %+v", tenant)
			}

			if tc.tx.commits != tc.wantCommits {
				t.Errorf("expected %d commits, got %d", tc.wantCommits, tc.tx.commits)
			}
			if tc.tx.rollbacks != tc.wantRollbacks {
				t.Errorf("expected %d rollbacks, got %d", tc.wantRollbacks, tc.tx.rollbacks)
			}
		})
	}
}

// Two tenants provisioned concurrently must never write through each other's
// connection handle. Every binding carries its schema, so the recorders can
// check each write against the tenant it belongs to.
func TestService_ProvisionConcurrentIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := &provisionMocks{
		db:            NewMockDBClientInterface(ctrl),
		storage:       NewMockStorageInterface(ctrl),
		tenantStorage: NewMockTenantStorageInterface(ctrl),
		registry:      NewMockRegistryInterface(ctrl),
		director:      NewMockDirectorInterface(ctrl),
		migrator:      NewMockMigratorInterface(ctrl),
		hasher:        NewMockHasherInterface(ctrl),
		monitor:       NewMockMonitorInterface(ctrl),
		logger:        NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)

	s := NewService(
		mocks.db,
		mocks.storage,
		mocks.tenantStorage,
		mocks.registry,
		mocks.director,
		mocks.migrator,
		mocks.hasher,
		mockTracer,
		mocks.monitor,
		mocks.logger,
	)

	tenants := map[string]*types.Tenant{
		"tenant_acme": {
			ID:        1,
			Name:      "Acme Corp",
			Subdomain: "acme",
			Schema:    "tenant_acme",
			Active:    true,
			CreatedAt: time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC),
		},
		"tenant_globex": {
			ID:        2,
			Name:      "Globex",
			Subdomain: "globex",
			Schema:    "tenant_globex",
			Active:    true,
			CreatedAt: time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC),
		},
	}
	schemaByTenantID := map[int64]string{1: "tenant_acme", 2: "tenant_globex"}

	var (
		mu             sync.Mutex
		txs            []*fakeTx
		schemaByDB     = map[*sql.DB]string{}
		migrated       = map[string]int{}
		seededAdmins   = map[string]int{}
		seededSettings = map[string]int{}
	)

	mockTracer.EXPECT().Start(gomock.Any(), "provisioner.Service.Provision").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	for schema := range tenants {
		mocks.registry.EXPECT().Exists(gomock.Any(), schema).Return(false, nil)
		mocks.registry.EXPECT().Create(gomock.Any(), schema).Return(nil)
	}
	mocks.db.EXPECT().BeginTx(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (context.Context, db.TxInterface, error) {
			tx := &fakeTx{}
			mu.Lock()
			txs = append(txs, tx)
			mu.Unlock()
			return ctx, tx, nil
		}).Times(2)
	mocks.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			created, ok := tenants[tenant.Schema]
			if !ok || created.Subdomain != tenant.Subdomain {
				return nil, fmt.Errorf("catalog row does not match its schema: %+v", tenant)
			}
			return created, nil
		}).Times(2)
	mocks.director.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, schema string) (*tenantdb.Binding, error) {
			handle := sql.OpenDB(stubConnector{})
			mu.Lock()
			schemaByDB[handle] = schema
			mu.Unlock()
			return tenantdb.NewBinding(handle, schema), nil
		}).Times(2)
	mocks.migrator.EXPECT().ApplyTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, conn *sql.DB) error {
			mu.Lock()
			defer mu.Unlock()
			schema, ok := schemaByDB[conn]
			if !ok {
				return errors.New("migration ran on an unbound connection")
			}
			migrated[schema]++
			return nil
		}).Times(2)
	mocks.hasher.EXPECT().Hash(gomock.Any()).Return("hashed-password", nil).Times(2)
	mocks.tenantStorage.EXPECT().CreateAdminUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, runner sq.BaseRunner, user *types.AdminUser) (*types.AdminUser, error) {
			mu.Lock()
			defer mu.Unlock()
			schema := schemaByDB[runner.(*sql.DB)]
			if want := schemaByTenantID[user.TenantID]; schema != want {
				return nil, fmt.Errorf("admin for tenant %d written through %q, want %q", user.TenantID, schema, want)
			}
			seededAdmins[schema]++
			return user, nil
		}).Times(2)
	mocks.tenantStorage.EXPECT().CreateSettings(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, runner sq.BaseRunner, settings []*types.TenantSetting) error {
			mu.Lock()
			defer mu.Unlock()
			if len(settings) == 0 {
				return errors.New("no settings seeded")
			}
			schema := schemaByDB[runner.(*sql.DB)]
			if want := schemaByTenantID[settings[0].TenantID]; schema != want {
				return fmt.Errorf("settings for tenant %d written through %q, want %q", settings[0].TenantID, schema, want)
			}
			seededSettings[schema]++
			return nil
		}).Times(2)
	mocks.monitor.EXPECT().IncTenantProvisioned("pro").Times(2)
	mocks.logger.EXPECT().Security().Return(logging.NewNoopSecurityLogger()).Times(2)

	requests := []*types.SignupRequest{
		{
			CompanyName:          "Acme Corp",
			Subdomain:            "acme",
			AdminName:            "Ada Lovelace",
			AdminEmail:           "ada@acme.test",
			Password:             "s3cret-passw0rd",
			PasswordConfirmation: "s3cret-passw0rd",
			Plan:                 "pro",
		},
		{
			CompanyName:          "Globex",
			Subdomain:            "globex",
			AdminName:            "Hank Scorpio",
			AdminEmail:           "hank@globex.test",
			Password:             "s3cret-passw0rd",
			PasswordConfirmation: "s3cret-passw0rd",
			Plan:                 "pro",
		},
	}

	gotTenants := make([]*types.Tenant, len(requests))
	gotErrs := make([]error, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *types.SignupRequest) {
			defer wg.Done()
			gotTenants[i], gotErrs[i] = s.Provision(context.Background(), req)
		}(i, req)
	}
	wg.Wait()

	for i, req := range requests {
		if gotErrs[i] != nil {
			t.Fatalf("provisioning %q failed: %v", req.Subdomain, gotErrs[i])
		}
		if gotTenants[i] == nil || gotTenants[i].Subdomain != req.Subdomain {
			t.Errorf("expected tenant %q, got %+v", req.Subdomain, gotTenants[i])
		}
	}

	for schema := range tenants {
		if migrated[schema] != 1 {
			t.Errorf("expected one migration run for %s, got %d", schema, migrated[schema])
		}
		if seededAdmins[schema] != 1 {
			t.Errorf("expected one admin seeded for %s, got %d", schema, seededAdmins[schema])
		}
		if seededSettings[schema] != 1 {
			t.Errorf("expected one settings seed for %s, got %d", schema, seededSettings[schema])
		}
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 catalog transactions, got %d", len(txs))
	}
	for _, tx := range txs {
		if tx.commits != 1 || tx.rollbacks != 0 {
			t.Errorf("expected each transaction committed exactly once, got commits=%d rollbacks=%d", tx.commits, tx.rollbacks)
		}
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events for security-relevant state changes.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

// TenantProvisioned records the durable creation of a tenant environment,
// including its first administrator account.
func (s *SecurityLogger) TenantProvisioned(tenantID int64, subdomain, adminEmail string) {
	s.l.Info("tenant provisioned",
		zap.String("event", "tenant_provisioned"),
		zap.Int64("tenant_id", tenantID),
		zap.String("subdomain", subdomain),
		zap.String("admin_email", adminEmail),
	)
}

// SchemaCompensated records the rollback drop of a partially provisioned schema.
func (s *SecurityLogger) SchemaCompensated(schema string) {
	s.l.Info("schema compensated",
		zap.String("event", "schema_compensated"),
		zap.String("schema", schema),
	)
}

// SchemaOrphaned records a failed compensating drop. The schema survives with
// no owning tenant row and needs operator cleanup.
func (s *SecurityLogger) SchemaOrphaned(schema string) {
	s.l.Error("schema orphaned",
		zap.String("event", "schema_orphaned"),
		zap.String("schema", schema),
	)
}

// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrate

import (
	"context"
	"database/sql"
)

type RunnerInterface interface {
	ApplyTenant(ctx context.Context, conn *sql.DB) error
	ApplyCatalog(ctx context.Context, conn *sql.DB) error
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantdb

import (
	"context"
)

type DirectorInterface interface {
	Open(ctx context.Context, schema string) (*Binding, error)
	Rebind(ctx context.Context, logicalName, schema string) (*Binding, error)
	Close()
}

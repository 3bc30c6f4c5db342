// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
)

type RegistryInterface interface {
	Exists(ctx context.Context, schemaName string) (bool, error)
	Create(ctx context.Context, schemaName string) error
	Drop(ctx context.Context, schemaName string) error
}

// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.sql tenant/*.sql
var EmbedMigrations embed.FS

// Catalog returns the migrations for the shared catalog schema.
func Catalog() fs.FS {
	sub, err := fs.Sub(EmbedMigrations, "catalog")
	if err != nil {
		panic(err)
	}
	return sub
}

// Tenant returns the migrations applied inside each tenant schema.
func Tenant() fs.FS {
	sub, err := fs.Sub(EmbedMigrations, "tenant")
	if err != nil {
		panic(err)
	}
	return sub
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) > 0 {
		return cors.Handler(
			cors.Options{
				AllowedOrigins: origins,
				AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
				MaxAge:         300,
			},
		)
	}

	return func(next http.Handler) http.Handler {
		return next
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import "strings"

const maxSlugLength = 50

// NormalizeSubdomain lowercases raw and collapses every run of characters
// outside [a-z0-9] into a single hyphen, trimming hyphens from both ends and
// capping the result at 50 characters. An empty result means nothing in the
// input was usable, callers treat that as a validation failure.
func NormalizeSubdomain(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingHyphen := false
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	return slug
}

// SchemaName derives the physical schema name for a normalized slug. Distinct
// slugs always map to distinct schema names.
func SchemaName(slug string) string {
	return "tenant_" + slug
}

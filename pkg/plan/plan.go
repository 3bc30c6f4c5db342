// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package plan defines the subscription tiers a tenant can sign up for and
// the limits seeded into each tenant schema. The mapping is pure and has no
// persisted representation, it is recomputed from the plan id on demand.
package plan

import "strconv"

// UnlimitedUsers marks a tier without a user cap.
const UnlimitedUsers = -1

const (
	Free       = "free"
	Basic      = "basic"
	Pro        = "pro"
	Enterprise = "enterprise"
)

// Limits carries the per-tier quotas copied into tenant settings.
type Limits struct {
	MaxUsers     int
	StorageLimit string
}

var catalog = map[string]Limits{
	Free:       {MaxUsers: 5, StorageLimit: "1GB"},
	Basic:      {MaxUsers: 25, StorageLimit: "10GB"},
	Pro:        {MaxUsers: 100, StorageLimit: "100GB"},
	Enterprise: {MaxUsers: UnlimitedUsers, StorageLimit: "1TB"},
}

var labels = map[string]string{
	Free:       "Free",
	Basic:      "Basic",
	Pro:        "Pro",
	Enterprise: "Enterprise",
}

// LimitsFor returns the limits for id. Unknown ids fall back to the free
// tier, callers that must reject them validate the id before lookup.
func LimitsFor(id string) Limits {
	if l, ok := catalog[id]; ok {
		return l
	}

	return catalog[Free]
}

// Known reports whether id names a tier in the catalog.
func Known(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Label returns the display name for id, or id itself when unknown.
func Label(id string) string {
	if l, ok := labels[id]; ok {
		return l
	}

	return id
}

// IDs lists the tier identifiers in ascending order of capability.
func IDs() []string {
	return []string{Free, Basic, Pro, Enterprise}
}

// MaxUsersString renders the user cap for seeding into tenant settings,
// spelling out the unlimited sentinel.
func (l Limits) MaxUsersString() string {
	if l.MaxUsers == UnlimitedUsers {
		return "unlimited"
	}

	return strconv.Itoa(l.MaxUsers)
}

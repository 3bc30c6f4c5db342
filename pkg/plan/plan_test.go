// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package plan

import "testing"

func TestLimitsFor(t *testing.T) {
	for _, tt := range []struct {
		name         string
		id           string
		wantUsers    int
		wantStorage  string
		wantMaxUsers string
	}{
		{
			name:         "free",
			id:           Free,
			wantUsers:    5,
			wantStorage:  "1GB",
			wantMaxUsers: "5",
		},
		{
			name:         "basic",
			id:           Basic,
			wantUsers:    25,
			wantStorage:  "10GB",
			wantMaxUsers: "25",
		},
		{
			name:         "pro",
			id:           Pro,
			wantUsers:    100,
			wantStorage:  "100GB",
			wantMaxUsers: "100",
		},
		{
			name:         "enterprise",
			id:           Enterprise,
			wantUsers:    UnlimitedUsers,
			wantStorage:  "1TB",
			wantMaxUsers: "unlimited",
		},
		{
			name:         "unknown falls back to free",
			id:           "platinum",
			wantUsers:    5,
			wantStorage:  "1GB",
			wantMaxUsers: "5",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := LimitsFor(tt.id)

			if l.MaxUsers != tt.wantUsers {
				t.Fatalf("expected %d max users, got %d", tt.wantUsers, l.MaxUsers)
			}

			if l.StorageLimit != tt.wantStorage {
				t.Fatalf("expected storage limit %q, got %q", tt.wantStorage, l.StorageLimit)
			}

			if got := l.MaxUsersString(); got != tt.wantMaxUsers {
				t.Fatalf("expected max users string %q, got %q", tt.wantMaxUsers, got)
			}
		})
	}
}

func TestLimitsForIsStable(t *testing.T) {
	first := LimitsFor(Pro)
	second := LimitsFor(Pro)

	if first != second {
		t.Fatalf("expected identical limits on repeated lookups, got %+v and %+v", first, second)
	}
}

func TestKnown(t *testing.T) {
	for _, id := range IDs() {
		if !Known(id) {
			t.Fatalf("expected %q to be a known tier", id)
		}
	}

	if Known("platinum") {
		t.Fatal("expected unknown tier to be reported as such")
	}
}

func TestLabel(t *testing.T) {
	if got := Label(Enterprise); got != "Enterprise" {
		t.Fatalf("expected label Enterprise, got %q", got)
	}

	if got := Label("platinum"); got != "platinum" {
		t.Fatalf("expected unknown id to be returned as is, got %q", got)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// runCLI executes the built binary with the given arguments and the
// environment the server itself runs with.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if testEnv == nil || testEnv.BinPath == "" {
		t.Skip("requires a locally built binary")
	}

	cmd := exec.Command(testEnv.BinPath, args...)
	cmd.Env = append(os.Environ(),
		"DSN="+catalogDSN(),
		"BASE_HOST="+testBaseHost,
		"LOG_LEVEL=error",
		"TRACING_ENABLED=false",
	)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func provisionArgs(subdomain, planID string, extra ...string) []string {
	args := []string{
		"provision",
		"--company", "CLI Test Co",
		"--subdomain", subdomain,
		"--admin-name", "CLI Admin",
		"--admin-email", fmt.Sprintf("admin@%s.test", subdomain),
		"--admin-password", "cli-test-secret",
		"--plan", planID,
	}
	return append(args, extra...)
}

// TestCLIProvision provisions tenants through both client paths the CLI
// supports and verifies each against the database. The direct path wires
// the provisioner against the database in-process, the HTTP path talks to
// the running server.
func TestCLIProvision(t *testing.T) {
	paths := []struct {
		name      string
		extraArgs func() []string
	}{
		{
			name:      "Direct",
			extraArgs: func() []string { return nil },
		},
		{
			name: "HTTP",
			extraArgs: func() []string {
				return []string{"--http-endpoint", strings.TrimPrefix(serviceBaseURL(), "http://")}
			},
		},
	}

	for _, tt := range paths {
		t.Run(tt.name, func(t *testing.T) {
			subdomain := fmt.Sprintf("cli-%s-%d", strings.ToLower(tt.name), time.Now().Unix())

			output, err := runCLI(t, provisionArgs(subdomain, "basic", tt.extraArgs()...)...)
			if err != nil {
				t.Fatalf("provision failed: %v, output: %s", err, output)
			}
			if !strings.Contains(output, "Tenant provisioned") {
				t.Errorf("expected provisioning confirmation in output, got: %s", output)
			}

			db := openCatalogDB(t)
			var active bool
			row := db.QueryRow("SELECT active FROM tenants WHERE subdomain = $1", subdomain)
			if err := row.Scan(&active); err != nil {
				t.Fatalf("failed to read catalog row: %v", err)
			}
			if !active {
				t.Error("expected provisioned tenant to be active")
			}

			t.Run("Duplicate Should Fail", func(t *testing.T) {
				output, err := runCLI(t, provisionArgs(subdomain, "basic", tt.extraArgs()...)...)
				if err == nil {
					t.Fatal("expected error when provisioning a taken subdomain, got nil")
				}
				if !strings.Contains(output, "already taken") {
					t.Errorf("expected a subdomain conflict message, got: %s", output)
				}
			})
		})
	}
}

// TestCLITenantInspection provisions a tenant and exercises the read-side
// commands against it.
func TestCLITenantInspection(t *testing.T) {
	subdomain := fmt.Sprintf("cli-inspect-%d", time.Now().Unix())
	adminEmail := fmt.Sprintf("admin@%s.test", subdomain)

	output, err := runCLI(t, provisionArgs(subdomain, "free")...)
	if err != nil {
		t.Fatalf("provision failed: %v, output: %s", err, output)
	}

	t.Run("Tenant List", func(t *testing.T) {
		output, err := runCLI(t, "tenant", "list")
		if err != nil {
			t.Fatalf("tenant list failed: %v, output: %s", err, output)
		}
		if !strings.Contains(output, subdomain) {
			t.Errorf("expected %q in tenant list output, got: %s", subdomain, output)
		}
	})

	t.Run("Tenant Get", func(t *testing.T) {
		output, err := runCLI(t, "tenant", "get", subdomain)
		if err != nil {
			t.Fatalf("tenant get failed: %v, output: %s", err, output)
		}
		if !strings.Contains(output, "tenant_"+subdomain) {
			t.Errorf("expected schema name in tenant get output, got: %s", output)
		}
	})

	t.Run("Tenant Users List", func(t *testing.T) {
		output, err := runCLI(t, "tenant", "users", "list", subdomain)
		if err != nil {
			t.Fatalf("tenant users list failed: %v, output: %s", err, output)
		}
		if !strings.Contains(output, adminEmail) {
			t.Errorf("expected %q in users list output, got: %s", adminEmail, output)
		}
	})

	t.Run("Migration Status For Tenant", func(t *testing.T) {
		output, err := runCLI(t, "migrate", "--tenant", subdomain, "status", "--dsn", catalogDSN())
		if err != nil {
			t.Fatalf("migrate status failed: %v, output: %s", err, output)
		}
	})
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/weftworks/provisioning-service/internal/storage"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list [subdomain]",
	Short: "List users inside a tenant's schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := getBackend()
		if err != nil {
			return err
		}
		defer b.close()

		ctx := cmd.Context()

		tenant, err := b.storage.GetTenantBySubdomain(ctx, args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("tenant %q not found", args[0])
			}
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		binding, err := b.director.Open(ctx, tenant.Schema)
		if err != nil {
			return fmt.Errorf("failed to open tenant connection: %w", err)
		}
		defer binding.Close()

		users, err := b.tenantStorage.ListAdminUsers(ctx, binding.DB())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tNAME\tEMAIL\tROLE\tCREATED_AT")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
}

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

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List provisioned tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := getBackend()
		if err != nil {
			return err
		}
		defer b.close()

		tenants, err := b.storage.ListTenants(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSUBDOMAIN\tSCHEMA\tACTIVE\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Subdomain, t.Schema, t.Active, t.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [subdomain]",
	Short: "Show a tenant's catalog record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := getBackend()
		if err != nil {
			return err
		}
		defer b.close()

		tenant, err := b.storage.GetTenantBySubdomain(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("tenant %q not found", args[0])
			}
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		fmt.Printf("ID:         %d\n", tenant.ID)
		fmt.Printf("Name:       %s\n", tenant.Name)
		fmt.Printf("Subdomain:  %s\n", tenant.Subdomain)
		fmt.Printf("Schema:     %s\n", tenant.Schema)
		fmt.Printf("Active:     %v\n", tenant.Active)
		fmt.Printf("Created at: %s\n", tenant.CreatedAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(getTenantCmd)
}

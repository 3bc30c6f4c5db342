// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/weftworks/provisioning-service/internal/types"
	"github.com/weftworks/provisioning-service/internal/validation"
	"github.com/weftworks/provisioning-service/pkg/plan"
	"github.com/weftworks/provisioning-service/pkg/provisioner"
)

var (
	companyName   string
	subdomain     string
	adminName     string
	adminEmail    string
	adminPassword string
	planID        string
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision a new tenant",
	Long:  `Provision a new tenant end to end: schema, catalog row, migrations, admin user and default settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &types.SignupRequest{
			CompanyName:          companyName,
			Subdomain:            subdomain,
			AdminName:            adminName,
			AdminEmail:           adminEmail,
			Password:             adminPassword,
			PasswordConfirmation: adminPassword,
			Plan:                 planID,
		}

		if fieldErrs := validation.NewValidator().Validate(*req); fieldErrs != nil {
			return formatFieldErrors(fieldErrs)
		}

		closer, service, specs, err := getProvisioner()
		if err != nil {
			return err
		}
		defer closer()

		timeout := 2 * time.Minute
		if specs != nil {
			timeout = specs.ProvisionTimeout
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		tenant, err := service.Provision(ctx, req)
		if err != nil {
			var fieldErrs validation.FieldErrors
			switch {
			case errors.Is(err, provisioner.ErrSubdomainTaken):
				return fmt.Errorf("subdomain %q is already taken", subdomain)
			case errors.As(err, &fieldErrs):
				return formatFieldErrors(fieldErrs)
			}
			return fmt.Errorf("failed to provision tenant: %w", err)
		}

		fmt.Printf("Tenant provisioned: %s (ID: %d)\n", tenant.Name, tenant.ID)
		fmt.Printf("Schema: %s\n", tenant.Schema)
		if specs != nil {
			fmt.Printf("URL: %s.%s\n", tenant.Subdomain, specs.BaseHost)
		}
		return nil
	},
}

func formatFieldErrors(fieldErrs validation.FieldErrors) error {
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("  %s: %s", field, fieldErrs[field]))
	}

	return fmt.Errorf("invalid request:\n%s", strings.Join(lines, "\n"))
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVar(&companyName, "company", "", "Company display name")
	provisionCmd.Flags().StringVar(&subdomain, "subdomain", "", "Subdomain slug (lowercase letters, numbers, hyphens)")
	provisionCmd.Flags().StringVar(&adminName, "admin-name", "", "Admin user's full name")
	provisionCmd.Flags().StringVar(&adminEmail, "admin-email", "", "Admin user's email address")
	provisionCmd.Flags().StringVar(&adminPassword, "admin-password", "", "Admin user's initial password")
	provisionCmd.Flags().StringVar(&planID, "plan", plan.Free, fmt.Sprintf("Subscription plan (%s)", strings.Join(plan.IDs(), ", ")))

	_ = provisionCmd.MarkFlagRequired("company")
	_ = provisionCmd.MarkFlagRequired("subdomain")
	_ = provisionCmd.MarkFlagRequired("admin-name")
	_ = provisionCmd.MarkFlagRequired("admin-email")
	_ = provisionCmd.MarkFlagRequired("admin-password")
}

// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nexusdev/nexus-service/internal/types"
	"github.com/nexusdev/nexus-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the tenant the server resolves for this client",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var tenant types.Tenant
		if err := client.get(context.Background(), "/api/v0/tenant-info", &tenant); err != nil {
			return fmt.Errorf("failed to fetch tenant info: %w", err)
		}

		fmt.Printf("ID: %s\nName: %s\nSlug: %s\n", tenant.ID, tenant.Name, tenant.Slug)
		if tenant.Domain != "" {
			fmt.Printf("Domain: %s\n", tenant.Domain)
		}
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var tenants []*types.Tenant
		if err := client.get(context.Background(), "/api/v0/my-tenants", &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.Slug)
		}
		w.Flush()
		return nil
	},
}

var switchTenantCmd = &cobra.Command{
	Use:   "switch [tenant-id]",
	Short: "Re-resolve a tenant id and show the record it pins to",
	Long: `Re-resolve a tenant id through the server's directory and show the
record it pins to. Fails when the id does not match an active tenant, which
makes it a cheap preflight for scripting --tenant-id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		session := tenant.NewSession(&apiDirectory{client: client})
		t, err := session.Switch(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID: %s\nName: %s\nSlug: %s\n", t.ID, t.Name, t.Slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(tenantInfoCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(switchTenantCmd)
}

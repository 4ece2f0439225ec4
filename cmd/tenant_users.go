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
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage tenant members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List members of the selected tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client := newAPIClient()
		if err := pinTenant(ctx, client); err != nil {
			return fmt.Errorf("failed to select tenant: %w", err)
		}

		var members []*types.Membership
		if err := client.get(ctx, "/api/v0/members", &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tROLE")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\n", m.UserID, m.Role)
		}
		w.Flush()
		return nil
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [user-id] [role]",
	Short: "Add a member to the selected tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client := newAPIClient()
		if err := pinTenant(ctx, client); err != nil {
			return fmt.Errorf("failed to select tenant: %w", err)
		}

		body := map[string]string{
			"user_id": args[0],
			"role":    args[1],
		}

		var membership types.Membership
		if err := client.post(ctx, "/api/v0/members", body, &membership); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		fmt.Printf("Member added: %s (Role: %s)\n", membership.UserID, membership.Role)
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [user-id]",
	Short: "Remove a member from the selected tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client := newAPIClient()
		if err := pinTenant(ctx, client); err != nil {
			return fmt.Errorf("failed to select tenant: %w", err)
		}

		if err := client.delete(ctx, "/api/v0/members/"+args[0]); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member removed: %s\n", args[0])
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(addMemberCmd)
	membersCmd.AddCommand(removeMemberCmd)
}

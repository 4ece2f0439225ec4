// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	bearerToken  string
	tenantID     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Nexus Service",
	Long:  `Nexus Service CLI for running the server and managing tenants.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant-id", "", "Tenant to address, sent as the X-Tenant-ID header")
}

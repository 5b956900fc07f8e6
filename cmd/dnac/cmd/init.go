/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickenator/dna-codec/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dnac configuration",
	Long: `Create the dnac config file with the default markers, a vault
location, and a generated server API key.

This is required before running the server.

Examples:
  dnac init
  dnac init --vault-path /var/lib/dnac/vault
  dnac init --force`,
	// Overrides the root hook, which would fail on a config file that
	// does not exist yet
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath, _ := cmd.Flags().GetString("vault-path")
		force, _ := cmd.Flags().GetBool("force")

		path := cfgFile
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			cmd.Printf("Config already exists at %s. Use --force to reinitialize.\n", path)
			return nil
		}

		bootstrapped, err := config.BootstrapConfig(path, vaultPath)
		if err != nil {
			return fmt.Errorf("failed to bootstrap config: %w", err)
		}

		cmd.Printf("✅ dnac configuration created at %s\n", path)
		cmd.Printf("Server API key: %s\n", bootstrapped.Server.APIKey)
		cmd.Printf("Vault path: %s\n", bootstrapped.Vault.Path)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  dnac serve\n")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("vault-path", "./vault", "Vault directory for stored sequences")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rickenator/dna-codec/pkg/api"
	"github.com/rickenator/dna-codec/pkg/vault"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the DNA transcoding REST API server with API key authentication
and Prometheus metrics.

The server exposes encode and decode endpoints for messages and files,
plus the sequence vault. The API key comes from the config file; run
'dnac init' to generate one.

Examples:
  dnac serve
  dnac serve --port 9000 --bind 0.0.0.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")

		if port == 0 {
			port = cfg.Server.Port
		}
		if bind == "" {
			bind = cfg.Server.Bind
		}

		if cfg.Server.APIKey == "" {
			return fmt.Errorf("server.api_key is not set (run 'dnac init' first)")
		}

		archive, err := vault.Open(cfg.Vault.Path, dna, cfg.Vault.EntryEncoding)
		if err != nil {
			return fmt.Errorf("failed to open vault: %w", err)
		}
		defer archive.Close()

		logrus.Infof("Sequence vault open at %s", cfg.Vault.Path)

		serverConfig := api.ServerConfig{
			Port:   port,
			Bind:   bind,
			APIKey: cfg.Server.APIKey,
		}
		server := api.NewServer(dna, archive, serverConfig, api.NewMetrics())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return api.StartServer(ctx, server, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (default from config)")
}

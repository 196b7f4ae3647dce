// file: cmd/serve.go
// version: 1.0.0
// guid: 9d3f6a81-4c2e-4b57-a8d0-5e1b7c9f2a63

package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/jdfalk/isbn-catalog/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve the catalog over HTTP:

  POST /api/v1/books        add a book, body {"isbn": "..."}
  GET  /api/v1/books/:isbn  fetch a catalogued book
  GET  /health              liveness and counts
  GET  /metrics             Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, svc, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg := serverConfig(cmd)
			logging.Infof("Using catalog %s with %s", config.AppConfig.DatabasePath, svc.ProviderName())
			return server.NewServer(svc, store, cfg).Start(ctx, cfg)
		},
	}

	cmd.Flags().String("port", "", "port to run the web server on (default from serve_port)")
	cmd.Flags().String("host", "", "host to bind the web server to (default from serve_host)")
	cmd.Flags().Duration("read-timeout", 15*time.Second, "read timeout (e.g. 15s, 1m)")
	cmd.Flags().Duration("write-timeout", 60*time.Second, "write timeout (e.g. 60s, 2m)")
	cmd.Flags().Duration("idle-timeout", 60*time.Second, "idle timeout (e.g. 60s, 2m)")
	return cmd
}

// serverConfig merges config values with command-line overrides.
func serverConfig(cmd *cobra.Command) server.ServerConfig {
	cfg := server.GetDefaultServerConfig()
	if config.AppConfig.ServeHost != "" {
		cfg.Host = config.AppConfig.ServeHost
	}
	if config.AppConfig.ServePort != "" {
		cfg.Port = config.AppConfig.ServePort
	}
	if config.AppConfig.ServeRateLimit > 0 {
		cfg.RateLimit = config.AppConfig.ServeRateLimit
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	cfg.ReadTimeout, _ = cmd.Flags().GetDuration("read-timeout")
	cfg.WriteTimeout, _ = cmd.Flags().GetDuration("write-timeout")
	cfg.IdleTimeout, _ = cmd.Flags().GetDuration("idle-timeout")
	return cfg
}

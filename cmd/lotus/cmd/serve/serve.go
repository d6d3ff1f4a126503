package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahitagnied/lotus-app/internal/app"
	"github.com/ahitagnied/lotus-app/internal/config"
)

const shutdownTimeout = 30 * time.Second

var (
	host    string
	port    string
	verbose bool
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Interface to listen on (overrides HOST)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Development logging")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription HTTP API",
	Long: `Start the transcription HTTP API

- POST /transcribe/ with a multipart "file" field
- GET /health and GET /metrics for operations
- Stops gracefully on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := app.Bootstrap(verbose, func(cfg *config.Config) {
			if host != "" {
				cfg.Server.Host = host
			}
			if port != "" {
				cfg.Server.Port = port
			}
		})
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		errCh, err := srv.Start()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			logger.Info("Received shutdown signal")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}

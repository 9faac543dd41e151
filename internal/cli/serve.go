package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/archon/internal/server"
	"github.com/dshills/archon/internal/store"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the review HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log, cmd.ErrOrStderr())

		reviews := store.NewMemory()
		engine, completions, err := buildEngine(cfg, reviews, logger)
		if err != nil {
			failWith(cmd.ErrOrStderr(), err)
			return nil
		}
		srv := server.New(cfg.Server, engine, reviews, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			if err != nil {
				failWith(cmd.ErrOrStderr(), fmt.Errorf("server: %w", err))
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down", "timeout", shutdownTimeout)
		logCacheStats(logger, slog.LevelInfo, completions)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			failWith(cmd.ErrOrStderr(), fmt.Errorf("shutdown: %w", err))
			return nil
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default :3001, or :$PORT)")
	serveCmd.Flags().StringVar(&flagFrontendURL, "frontend-url", "", "Allowed CORS origin")
	serveCmd.Flags().StringVar(&flagProvider, "provider", "", providerFlagUsage)
	serveCmd.Flags().StringVar(&flagModel, "model", "", "Default model name")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/config"
	"github.com/at-ishikawa/flashpapers/internal/server"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "flashpapers-server",
		Short:         "Flashpapers REST API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	paperStore, err := store.Open(cfg.Data.FilePath(), cfg.SRS.Parameters())
	if err != nil {
		return fmt.Errorf("store.Open(%s) > %w", cfg.Data.FilePath(), err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: server.New(paperStore, cfg.SRS.Parameters(), cfg.Server.AllowedOrigins, logger),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown() > %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("srv.ListenAndServe() > %w", err)
	}
}

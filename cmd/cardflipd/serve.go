package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/randomtoy/cardflip/internal/adapters/http"
	"github.com/randomtoy/cardflip/internal/adapters/telemetry"
	"github.com/randomtoy/cardflip/internal/app"
	"github.com/randomtoy/cardflip/internal/config"
)

func newServeCmd(dotenv *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP draw service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *dotenv)
		},
	}
}

func serve(ctx context.Context, dotenv string) error {
	cfg, err := config.Load(ctx, dotenv)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stdout, cfg.LogLevel)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := loadCatalog(ctx, cfg, logger)

	recorder, err := telemetry.NewRecorder(nil)
	if err != nil {
		return err
	}

	svc := app.NewDrawService(catalog, newRNG(cfg.DrawSeed), cfg.DrawPresets, recorder)
	e := httpadapter.NewServer(svc, logger, cfg.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "draws_enabled", svc.Enabled(), "presets", svc.Presets())
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}

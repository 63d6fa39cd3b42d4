package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/jsamuelsen/quote-studio/internal/adapters/http"
	"github.com/jsamuelsen/quote-studio/internal/adapters/http/handlers"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithStudio(cmd, flags, os.Stdout, runServe)
		},
	}
}

func runServe(ctx context.Context, s *Studio) error {
	cfg, logger := s.Config, s.Logger

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Catalog.Watch && cfg.Catalog.OverlayPath != "" {
		go func() {
			if err := s.Catalog.Watch(ctx); err != nil {
				logger.Warn("catalog watch stopped", slog.Any("error", err))
			}
		}()
	}

	loc := cfg.Render.Location()
	buildInfo := handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)

	server := httpadapter.New(&cfg.Server, cfg.App.Environment, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:           logger,
		AuthConfig:       &cfg.Auth,
		AppConfig:        &cfg.App,
		Timeout:          httpadapter.DefaultRequestTimeout,
		HealthHandler:    handlers.NewHealthHandler(s.Health, buildInfo).WithGatherer(s.telemetry.Gatherer()),
		QuoteHandler:     handlers.NewQuoteHandler(s.Generator),
		ContextHandler:   handlers.NewContextHandler(s.Resolver, s.Selector),
		HistoryHandler:   handlers.NewHistoryHandler(s.History, loc),
		FavoritesHandler: handlers.NewFavoritesHandler(s.Favorites),
		StatsHandler:     handlers.NewStatsHandler(s.History, s.Favorites),
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpadapter.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}

		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campuswell/cw-ui-api/config"
	"github.com/campuswell/cw-ui-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := bootstrap.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := services.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close services failed", "error", cerr)
		}
	}()

	server, serverErr := bootstrap.StartHTTPServer(cfg, services, logger)

	select {
	case err = <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.InfoContext(ctx, "shutdown signal received")
	}

	return bootstrap.ShutdownHTTPServer(server, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg config.AppConfig) {
	logger.InfoContext(ctx, "starting campuswell ui api",
		"addr", cfg.HTTP.Addr,
		"auth_mode", cfg.Auth.Mode,
		"session_store", cfg.Auth.SessionStore,
		"storage_mode", cfg.Mock.Storage,
		"sso_enabled", bootstrap.SSOEnabled(cfg),
		"simulate_latency", cfg.Mock.SimulateLatency)
}

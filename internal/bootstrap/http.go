package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/campuswell/cw-ui-api/config"
	httpx "github.com/campuswell/cw-ui-api/internal/http"
)

// StartHTTPServer builds the handler chain and starts the HTTP server.
// ListenAndServe runs in a goroutine; startup errors are reported via errCh.
func StartHTTPServer(cfg config.AppConfig, services *ServiceContainer, logger *slog.Logger) (*http.Server, <-chan error) {
	handler := buildHTTPHandler(cfg, services, logger)
	return startServer(cfg.HTTP.Addr, handler, logger)
}

func buildHTTPHandler(cfg config.AppConfig, services *ServiceContainer, logger *slog.Logger) http.Handler {
	router := httpx.NewRouter(httpx.RouterServices{
		Auth:         services.Auth,
		Chat:         services.Chat,
		Mood:         services.Mood,
		Analytics:    services.Analytics,
		Survey:       services.Survey,
		CookieDomain: cfg.HTTP.CookieDomain,
		SSOEnabled:   SSOEnabled(cfg),
		Logger:       logger,
	})

	// Recover outermost so panics in middleware are caught too
	handler := httpx.Logging(logger)(router)
	handler = httpx.Recover(logger)(handler)
	return handler
}

func startServer(addr string, handler http.Handler, logger *slog.Logger) (*http.Server, <-chan error) {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	return server, errCh
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(server *http.Server, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down http server")
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campuswell/cw-ui-api/config"
	"github.com/campuswell/cw-ui-api/internal/adapters/assistant"
	"github.com/campuswell/cw-ui-api/internal/adapters/mockmood"
	"github.com/campuswell/cw-ui-api/internal/data"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/service"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// ServiceContainer holds the application services and the connections
// backing them.
type ServiceContainer struct {
	Auth      *service.AuthService
	Chat      *service.ChatService
	Mood      *service.MoodService
	Analytics *service.AnalyticsService
	Survey    *service.SurveyService

	DB    *sql.DB
	Redis redis.UniversalClient
}

// NewServices wires adapters and services from configuration. Postgres and
// Redis connections are opened only when configuration calls for them.
func NewServices(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	c := &ServiceContainer{}

	delay := simnet.Delay{
		Disabled: !cfg.Mock.SimulateLatency,
		Scale:    cfg.Mock.LatencyScale,
	}

	if cfg.Auth.SessionStore == config.SessionStoreRedis {
		client, err := ConnectRedis(DatabaseConfig{RedisConfig: cfg.Redis, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Redis = client
	}

	moodStore, err := c.buildMoodStore(ctx, cfg, delay, logger)
	if err != nil {
		c.closeOnError()
		return nil, err
	}

	auth, err := BuildAuthService(AuthDeps{
		Config: cfg,
		Redis:  c.Redis,
		Delay:  delay,
		Logger: logger,
	})
	if err != nil {
		c.closeOnError()
		return nil, fmt.Errorf("build auth service: %w", err)
	}

	c.Auth = auth
	c.Chat = service.NewChatService(service.ChatServiceOptions{
		Responder: assistant.New(assistant.Options{Delay: delay}),
		Logger:    logger,
	})
	c.Mood = service.NewMoodService(service.MoodServiceOptions{Store: moodStore})
	c.Analytics = service.NewAnalyticsService(service.AnalyticsServiceOptions{Delay: delay})
	c.Survey = service.NewSurveyService(service.SurveyServiceOptions{Delay: delay})

	return c, nil
}

//nolint:ireturn // the mood backend is a runtime config decision.
func (c *ServiceContainer) buildMoodStore(ctx context.Context, cfg config.AppConfig, delay simnet.Delay, logger *slog.Logger) (ports.MoodStore, error) {
	if cfg.Mock.Storage != config.StorageModePostgres {
		return mockmood.New(mockmood.Options{Delay: delay}), nil
	}

	db, err := ConnectDB(DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	if cfg.Postgres.RunMigrationsOnStart {
		if migErr := RunMigrations(ctx, db, logger); migErr != nil {
			return nil, migErr
		}
	}

	return data.NewMoodRepo(db), nil
}

func (c *ServiceContainer) closeOnError() {
	_ = c.Close()
}

// Close releases the connections held by the container.
func (c *ServiceContainer) Close() error {
	var errs []error

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	return errors.Join(errs...)
}

// SSOEnabled reports whether the SSO login routes should be registered.
func SSOEnabled(cfg config.AppConfig) bool {
	return cfg.Auth.Mode == config.AuthModeOIDC && cfg.Auth.OAuth.DiscoveryURL != ""
}

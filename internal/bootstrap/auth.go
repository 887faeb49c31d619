package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campuswell/cw-ui-api/config"
	"github.com/campuswell/cw-ui-api/internal/adapters/authroles"
	"github.com/campuswell/cw-ui-api/internal/adapters/directory"
	"github.com/campuswell/cw-ui-api/internal/adapters/memory"
	"github.com/campuswell/cw-ui-api/internal/adapters/oidc"
	redisadapter "github.com/campuswell/cw-ui-api/internal/adapters/redis"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/service"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// AuthDeps carries the inputs needed to assemble the auth service.
type AuthDeps struct {
	Config config.AppConfig
	Redis  redis.UniversalClient
	Delay  simnet.Delay
	Logger *slog.Logger
}

// BuildAuthService assembles the auth service from configuration.
// Credential login always works against the account directory; the OIDC
// provider is layered on only when AUTH_MODE=oidc and a discovery URL is set.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	cfg := deps.Config

	dir := directory.New(directory.Config{
		AllowedDomains: cfg.Mock.AllowedSignupDomains,
		Delay:          deps.Delay,
	})

	sessions, err := buildSessionStore(cfg.Auth.SessionStore, deps.Redis)
	if err != nil {
		return nil, err
	}

	opts := service.AuthServiceOptions{
		Directory:  dir,
		Sessions:   sessions,
		SessionTTL: cfg.Auth.SessionTTL,
	}

	if cfg.Auth.Mode == config.AuthModeOIDC {
		if cfg.Auth.OAuth.DiscoveryURL == "" {
			if deps.Logger != nil {
				deps.Logger.Warn("auth mode is oidc but OAUTH_DISCOVERY_URL is not set, sso disabled")
			}
		} else {
			provider, providerErr := oidc.NewProvider(oidc.ProviderConfig{
				ClientID:     cfg.Auth.OAuth.ClientID,
				ClientSecret: cfg.Auth.OAuth.ClientSecret,
				RedirectURL:  cfg.Auth.OAuth.RedirectURL,
				Scope:        cfg.Auth.OAuth.Scope,
				DiscoveryURL: cfg.Auth.OAuth.DiscoveryURL,
			})
			if providerErr != nil {
				return nil, fmt.Errorf("build oidc provider: %w", providerErr)
			}
			opts.Provider = provider
			opts.Roles = authroles.StaticRoleMapper{
				AdminGroup:     cfg.Auth.AdminGroup,
				CounselorGroup: cfg.Auth.CounselorGroup,
			}
		}
	}

	return service.NewAuthService(opts), nil
}

//nolint:ireturn // store selection is a runtime config decision.
func buildSessionStore(mode config.SessionStoreMode, client redis.UniversalClient) (ports.SessionStore, error) {
	switch mode {
	case config.SessionStoreMemory:
		return memory.NewSessionStore(), nil
	case config.SessionStoreRedis:
		if client == nil {
			return nil, fmt.Errorf("session store mode %q requires a redis connection", mode)
		}
		return redisadapter.NewSessionStore(client), nil
	default:
		return nil, fmt.Errorf("unknown session store mode %q", mode)
	}
}

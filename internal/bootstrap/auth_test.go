package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/campuswell/cw-ui-api/config"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

func TestBuildAuthServiceLocalMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeLocal
	cfg.Auth.SessionStore = config.SessionStoreMemory

	svc, err := BuildAuthService(AuthDeps{
		Config: cfg,
		Delay:  simnet.None,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("BuildAuthService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("BuildAuthService() = nil, want service")
	}

	// SSO is not wired in local mode
	if _, err = svc.BeginLogin(t.Context(), "https://app.example.edu/auth/callback"); err == nil {
		t.Fatal("BeginLogin() error = nil, want sso-not-configured error")
	}
}

func TestBuildAuthServiceOIDCWithoutDiscoveryFallsBackToLocal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeOIDC
	cfg.Auth.SessionStore = config.SessionStoreMemory
	cfg.Auth.OAuth.ClientID = "client-id"
	cfg.Auth.OAuth.ClientSecret = "client-secret"

	svc, err := BuildAuthService(AuthDeps{
		Config: cfg,
		Delay:  simnet.None,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("BuildAuthService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("BuildAuthService() = nil, want local-only service")
	}

	if _, err = svc.BeginLogin(t.Context(), "https://app.example.edu/auth/callback"); err == nil {
		t.Fatal("BeginLogin() error = nil, want sso-not-configured error")
	}
}

func TestBuildSessionStore(t *testing.T) {
	tests := []struct {
		name    string
		mode    config.SessionStoreMode
		wantErr bool
	}{
		{name: "memory", mode: config.SessionStoreMemory},
		{name: "redis without client", mode: config.SessionStoreRedis, wantErr: true},
		{name: "unknown mode", mode: config.SessionStoreMode("disk"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := buildSessionStore(tt.mode, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("buildSessionStore(%q) error = nil, want error", tt.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildSessionStore(%q) error = %v", tt.mode, err)
			}
			if store == nil {
				t.Fatalf("buildSessionStore(%q) = nil, want store", tt.mode)
			}
		})
	}
}

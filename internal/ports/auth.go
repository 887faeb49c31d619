package ports

// Package ports defines interfaces (hexagonal ports) for application behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

// Credentials carries a credential login attempt.
type Credentials struct {
	Email    string
	Password string
	Role     domainauth.Role
}

// Registration carries a signup attempt. New accounts are always students.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Directory authenticates and registers users against an account source.
type Directory interface {
	// Authenticate verifies credentials and returns the matching identity.
	// Returns an unauthorized error for unknown accounts or role mismatches.
	Authenticate(ctx context.Context, creds Credentials) (domainauth.Identity, error)

	// Register creates a new student account and returns its identity.
	Register(ctx context.Context, reg Registration) (domainauth.Identity, error)
}

// BeginInput carries inputs for initiating an SSO auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper maps provider groups to application roles.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
	"github.com/campuswell/cw-ui-api/internal/ports"
)

// defaultSessionTTL bounds sessions when no duration is configured.
const defaultSessionTTL = 8 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
// Directory backs credential login and signup; Provider and Roles back the
// optional SSO flow and may be nil when SSO is disabled.
type AuthServiceOptions struct {
	Directory  ports.Directory
	Provider   ports.AuthProvider
	Sessions   ports.SessionStore
	Roles      ports.RoleMapper
	SessionTTL time.Duration
}

// AuthService orchestrates authentication flows by coordinating the
// directory, SSO provider, role mapping, and session persistence.
type AuthService struct {
	directory  ports.Directory
	provider   ports.AuthProvider
	sessions   ports.SessionStore
	roles      ports.RoleMapper
	sessionTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		directory:  opts.Directory,
		provider:   opts.Provider,
		sessions:   opts.Sessions,
		roles:      opts.Roles,
		sessionTTL: ttl,
	}
}

// LoginResult contains the established session after a successful login or signup.
type LoginResult struct {
	Session domainauth.Session
}

// Login authenticates credentials against the directory and persists a
// session. Directory failures surface verbatim; there is no retry.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*LoginResult, error) {
	identity, err := s.directory.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, identity)
}

// Signup registers a new student account and persists a session for it.
func (s *AuthService) Signup(ctx context.Context, reg ports.Registration) (*LoginResult, error) {
	identity, err := s.directory.Register(ctx, reg)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, identity)
}

// establishSession builds and persists a session for an authenticated identity.
// The session is durable before the caller sees it.
func (s *AuthService) establishSession(ctx context.Context, identity domainauth.Identity) (*LoginResult, error) {
	expiresAt := identity.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.sessionTTL)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      identity.Role,
		AvatarURL: identity.AvatarURL,
		Token:     identity.Token,
		ExpiresAt: expiresAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &LoginResult{Session: session}, nil
}

// BeginLoginResult contains the result of beginning an SSO login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an SSO flow and returns the provider auth URL with
// state and nonce. Returns an error when SSO is not configured.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, errors.New("sso is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing an SSO login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin completes an SSO flow by exchanging the code for an
// identity, mapping provider groups to a role, and persisting a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*LoginResult, error) {
	if s.provider == nil || s.roles == nil {
		return nil, errors.New("sso is not configured")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	identity.Role = s.roles.Map(identity.Groups)

	return s.establishSession(ctx, identity)
}

// GetSession retrieves a session by ID, cleaning up expired sessions.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session. The store delete completes before returning so
// a logged-out session cannot be observed afterwards.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// UUIDs are URL-safe and have good entropy
	return uuid.New().String()
}

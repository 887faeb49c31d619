package directory

// Package directory provides a fixed-account user directory for the demo
// deployment. Three seeded accounts cover each role; accounts created through
// signup live only for the process lifetime.

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/net/publicsuffix"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

// defaultAvatarURL is served for every demo account.
const defaultAvatarURL = "/api/placeholder/150/150"

// Simulated backend round-trip times.
const (
	loginLatency  = 1000 * time.Millisecond
	signupLatency = 1500 * time.Millisecond
)

// Config controls the directory adapter behavior.
type Config struct {
	// AllowedDomains restricts signup emails to these registered domains
	// (eTLD+1). Empty means any domain is accepted.
	AllowedDomains []string

	// Delay simulates backend latency on directory operations.
	Delay simnet.Delay
}

// account is a stored directory record. Seeded demo accounts carry no
// password hash and accept any non-empty password; registered accounts
// are verified against their bcrypt hash.
type account struct {
	Identity     domainauth.Identity
	PasswordHash []byte
}

// Directory implements ports.Directory over an in-process account table.
type Directory struct {
	allowedDomains map[string]struct{}
	delay          simnet.Delay

	mu         sync.RWMutex
	seeded     map[string]account
	registered []account

	now func() time.Time
}

var _ ports.Directory = (*Directory)(nil)

// New constructs a Directory seeded with the three demo accounts.
func New(cfg Config) *Directory {
	var allowed map[string]struct{}
	if len(cfg.AllowedDomains) > 0 {
		allowed = make(map[string]struct{}, len(cfg.AllowedDomains))
		for _, d := range cfg.AllowedDomains {
			if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
				allowed[d] = struct{}{}
			}
		}
	}

	return &Directory{
		allowedDomains: allowed,
		delay:          cfg.Delay,
		seeded:         seedAccounts(),
		now:            time.Now,
	}
}

// seedAccounts builds the fixed demo account table.
func seedAccounts() map[string]account {
	seeds := []domainauth.Identity{
		{UserID: 1, Email: "student@example.com", Name: "Alex Johnson", Role: domainauth.RoleStudent, AvatarURL: defaultAvatarURL},
		{UserID: 2, Email: "counselor@example.com", Name: "Dr. Sarah Wilson", Role: domainauth.RoleCounselor, AvatarURL: defaultAvatarURL},
		{UserID: 3, Email: "admin@example.com", Name: "Michael Chen", Role: domainauth.RoleAdmin, AvatarURL: defaultAvatarURL},
	}

	accounts := make(map[string]account, len(seeds))
	for _, id := range seeds {
		accounts[id.Email] = account{Identity: id}
	}
	return accounts
}

// Authenticate verifies credentials against the account table.
func (d *Directory) Authenticate(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	if err := d.delay.Wait(ctx, loginLatency); err != nil {
		return domainauth.Identity{}, err
	}

	// Empty fields are an authentication failure, not a form error: the
	// login contract classifies every rejected credential the same way.
	if creds.Email == "" || creds.Password == "" {
		return domainauth.Identity{}, apperrors.Unauthorized("Email and password are required")
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if acct, ok := d.seeded[creds.Email]; ok {
		// Demo accounts accept any non-empty password
		if acct.Identity.Role != creds.Role {
			return domainauth.Identity{}, errInvalidCredentials()
		}
		return d.issueToken(acct.Identity), nil
	}

	// Registered accounts are checked newest first so a re-registered email
	// authenticates against its latest password.
	for i := len(d.registered) - 1; i >= 0; i-- {
		acct := d.registered[i]
		if acct.Identity.Email != creds.Email || acct.Identity.Role != creds.Role {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(creds.Password)) != nil {
			return domainauth.Identity{}, errInvalidCredentials()
		}
		return d.issueToken(acct.Identity), nil
	}

	return domainauth.Identity{}, errInvalidCredentials()
}

// Register creates a new student account. Duplicate emails are accepted;
// the most recent registration wins at login time.
func (d *Directory) Register(ctx context.Context, reg ports.Registration) (domainauth.Identity, error) {
	if err := d.delay.Wait(ctx, signupLatency); err != nil {
		return domainauth.Identity{}, err
	}

	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return domainauth.Identity{}, apperrors.Validation("All fields are required")
	}
	if len(reg.Password) < 6 {
		return domainauth.Identity{}, apperrors.ValidationField("password", "Password must be at least 6 characters")
	}
	if err := d.checkEmailDomain(reg.Email); err != nil {
		return domainauth.Identity{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	identity := domainauth.Identity{
		UserID:    d.now().UnixMilli(),
		Name:      reg.Name,
		Email:     reg.Email,
		Role:      domainauth.RoleStudent,
		AvatarURL: defaultAvatarURL,
	}

	d.mu.Lock()
	d.registered = append(d.registered, account{Identity: identity, PasswordHash: hash})
	d.mu.Unlock()

	return d.issueToken(identity), nil
}

// checkEmailDomain enforces the configured university domain policy.
// Comparison is on the registered domain (eTLD+1) so student.cs.example.edu
// passes when example.edu is allowed.
func (d *Directory) checkEmailDomain(email string) error {
	if len(d.allowedDomains) == 0 {
		return nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return apperrors.ValidationField("email", "Invalid email address")
	}
	host := strings.ToLower(addr.Address[strings.LastIndex(addr.Address, "@")+1:])

	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return apperrors.ValidationField("email", "Invalid email address")
	}
	if _, ok := d.allowedDomains[etld]; !ok {
		return apperrors.ValidationField("email", "Email domain is not a recognized university domain")
	}
	return nil
}

// issueToken returns a copy of the identity with a fresh opaque token.
func (d *Directory) issueToken(id domainauth.Identity) domainauth.Identity {
	id.Token = "mock-jwt-token-" + uuid.NewString()
	return id
}

func errInvalidCredentials() error {
	return apperrors.Unauthorized("Invalid credentials or role")
}

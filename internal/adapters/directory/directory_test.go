package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
	apperrors "github.com/campuswell/cw-ui-api/internal/errors"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

func newTestDirectory(allowed ...string) *Directory {
	return New(Config{AllowedDomains: allowed, Delay: simnet.None})
}

func TestAuthenticateSeededAccounts(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	tests := []struct {
		email string
		role  domainauth.Role
		id    int64
		name  string
	}{
		{"student@example.com", domainauth.RoleStudent, 1, "Alex Johnson"},
		{"counselor@example.com", domainauth.RoleCounselor, 2, "Dr. Sarah Wilson"},
		{"admin@example.com", domainauth.RoleAdmin, 3, "Michael Chen"},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			got, err := d.Authenticate(ctx, ports.Credentials{
				Email:    tc.email,
				Password: "anything",
				Role:     tc.role,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.id, got.UserID)
			assert.Equal(t, tc.name, got.Name)
			assert.Equal(t, tc.role, got.Role)
			assert.Equal(t, "/api/placeholder/150/150", got.AvatarURL)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestAuthenticateEmptyFields(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	_, err := d.Authenticate(ctx, ports.Credentials{Password: "x", Role: domainauth.RoleStudent})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Email and password are required", err.Error())

	_, err = d.Authenticate(ctx, ports.Credentials{Email: "student@example.com", Role: domainauth.RoleStudent})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthenticateRoleMismatch(t *testing.T) {
	d := newTestDirectory()

	_, err := d.Authenticate(context.Background(), ports.Credentials{
		Email:    "student@example.com",
		Password: "x",
		Role:     domainauth.RoleAdmin,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials or role", err.Error())
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	d := newTestDirectory()

	_, err := d.Authenticate(context.Background(), ports.Credentials{
		Email:    "nobody@example.com",
		Password: "x",
		Role:     domainauth.RoleStudent,
	})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	id, err := d.Register(ctx, ports.Registration{
		Name:     "Jamie Lee",
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleStudent, id.Role)
	assert.NotZero(t, id.UserID)
	assert.NotEmpty(t, id.Token)

	// Correct password works, wrong password does not
	got, err := d.Authenticate(ctx, ports.Credentials{
		Email:    "jamie@example.com",
		Password: "hunter22",
		Role:     domainauth.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, id.UserID, got.UserID)

	_, err = d.Authenticate(ctx, ports.Credentials{
		Email:    "jamie@example.com",
		Password: "wrong",
		Role:     domainauth.RoleStudent,
	})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestRegisterValidation(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	_, err := d.Register(ctx, ports.Registration{Email: "a@b.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "All fields are required", err.Error())

	_, err = d.Register(ctx, ports.Registration{Name: "A", Email: "a@b.com", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters", err.Error())
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestRegisterDuplicateEmailAccepted(t *testing.T) {
	d := newTestDirectory()
	ctx := context.Background()

	reg := ports.Registration{Name: "A", Email: "dup@example.com", Password: "secret1"}
	_, err := d.Register(ctx, reg)
	require.NoError(t, err)

	reg.Password = "secret2"
	_, err = d.Register(ctx, reg)
	require.NoError(t, err)

	// Latest registration wins at login
	_, err = d.Authenticate(ctx, ports.Credentials{
		Email:    "dup@example.com",
		Password: "secret2",
		Role:     domainauth.RoleStudent,
	})
	assert.NoError(t, err)
}

func TestRegisterDomainPolicy(t *testing.T) {
	d := newTestDirectory("university.edu")
	ctx := context.Background()

	// Subdomain of an allowed registered domain passes
	_, err := d.Register(ctx, ports.Registration{
		Name:     "A",
		Email:    "a@cs.university.edu",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = d.Register(ctx, ports.Registration{
		Name:     "B",
		Email:    "b@elsewhere.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))
}

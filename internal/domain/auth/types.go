package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleStudent   Role = "student"
	RoleCounselor Role = "counselor"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCounselor, RoleAdmin:
		return true
	}
	return false
}

// Identity represents the authenticated principal returned by a directory or IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    int64  // stable numeric user identifier
	Name      string // display name
	Email     string
	Role      Role
	AvatarURL string
	Token     string    // opaque bearer token issued alongside the session
	Groups    []string  // raw provider groups (SSO only)
	ExpiresAt time.Time // absolute expiry
}

// SessionRecordVersion is the current wire version of persisted session records.
// Stores must treat records with an unknown version as absent.
const SessionRecordVersion = 1

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	Version   int       `json:"v"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session expiry has passed at the given instant.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

package config

import (
	"fmt"
	"strings"
)

// StorageMode selects where mood entries live.
type StorageMode string

const (
	// StorageModeMock fabricates mood entries in process (demo default).
	StorageModeMock StorageMode = "mock"
	// StorageModePostgres persists mood entries in Postgres.
	StorageModePostgres StorageMode = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageMode.
func (s *StorageMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "mock", "postgres":
		*s = StorageMode(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageMode: %q (valid options: mock, postgres)", v)
	}
}

// MockConfig controls the demo-backend behavior.
type MockConfig struct {
	// Storage selects the mood entry backend.
	Storage StorageMode `env:"STORAGE_MODE" envDefault:"mock"`

	// SimulateLatency toggles the artificial backend round-trip delays
	// the demo uses to exercise SPA loading states.
	SimulateLatency bool `env:"MOCK_SIMULATE_LATENCY" envDefault:"true"`

	// LatencyScale multiplies the base delays; 0.1 makes a 1s login wait 100ms.
	LatencyScale float64 `env:"MOCK_LATENCY_SCALE" envDefault:"1.0"`

	// AllowedSignupDomains restricts signup emails to these registered
	// domains (eTLD+1). Empty means any domain.
	AllowedSignupDomains []string `env:"ALLOWED_SIGNUP_DOMAINS" envDefault:""`
}

// Sanitize applies guardrails to mock configuration values.
func (m *MockConfig) Sanitize() {
	if m.LatencyScale < 0 {
		m.LatencyScale = 0
	}
	if m.LatencyScale > 10 {
		m.LatencyScale = 10
	}
}

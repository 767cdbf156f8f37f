package config

import (
	"fmt"
	"strings"
	"time"
)

// DurableBackend selects where the durable session area lives.
type DurableBackend string

const (
	// DurableBackendRedis keeps durable sessions in Redis so they survive restarts.
	DurableBackendRedis DurableBackend = "redis"
	// DurableBackendMemory keeps durable sessions in process memory (development only).
	DurableBackendMemory DurableBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for DurableBackend.
func (d *DurableBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "memory":
		*d = DurableBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid DurableBackend: %q (valid options: redis, memory)", v)
	}
}

// SessionConfig controls how long sessions are kept and how idle ones are swept.
// Variables are read with the SESSION_ prefix.
type SessionConfig struct {
	// DurableBackend selects the durable storage area.
	DurableBackend DurableBackend `env:"DURABLE_BACKEND" envDefault:"redis"`

	// DurableTTL bounds "remember me" sessions. A token with an earlier exp claim wins.
	DurableTTL time.Duration `env:"DURABLE_TTL" envDefault:"720h"`

	// EphemeralTTL bounds browser-session logins.
	EphemeralTTL time.Duration `env:"EPHEMERAL_TTL" envDefault:"12h"`

	// IdleTTL evicts in-memory session stores that have not been used for this long.
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"30m"`

	// SweepInterval controls how often idle stores and expired ephemeral keys are swept.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.DurableBackend == "" {
		s.DurableBackend = DurableBackendRedis
	}
	if s.DurableTTL <= 0 {
		s.DurableTTL = 720 * time.Hour
	}
	if s.EphemeralTTL <= 0 {
		s.EphemeralTTL = 12 * time.Hour
	}
	if s.IdleTTL <= 0 {
		s.IdleTTL = 30 * time.Minute
	}
	if s.SweepInterval <= 0 {
		s.SweepInterval = time.Minute
	}
	if s.SweepInterval > s.IdleTTL {
		s.SweepInterval = s.IdleTTL
	}
}

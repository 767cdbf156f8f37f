package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: BagBank API client and storage key names
//   - http.go: HTTP server configuration
//   - session.go: Session persistence and sweeping
//   - redis.go: Redis connection for the durable session area
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, insecure cookies, etc.)
	// Set DEV=true or APP_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// BagBank API configuration
	API APIConfig `envPrefix:"BAGBANK_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Session persistence configuration
	Session SessionConfig `envPrefix:"SESSION_"`

	// Redis connection used by the durable session area
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.HTTP.Sanitize()
	c.Session.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables.
// NODE_ENV is checked as a fallback.
func (c *AppConfig) detectDevMode() {
	if c.IsDev {
		return
	}
	for _, name := range []string{"APP_ENV", "NODE_ENV"} {
		v := strings.ToLower(os.Getenv(name))
		if v == "development" || v == "dev" {
			c.IsDev = true
			return
		}
	}
}

// UsesRedis reports whether the durable session area needs a Redis connection.
func (c *AppConfig) UsesRedis() bool {
	return c.Session.DurableBackend == DurableBackendRedis
}

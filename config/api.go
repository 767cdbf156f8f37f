package config

import (
	"strings"
	"time"
)

// Defaults used by the BagBank API client.
const (
	DefaultAPIBaseURL     = "http://localhost:8000/api/v1"
	DefaultAPITimeoutMS   = 10000
	DefaultTokenKey       = "bagbank_token"
	DefaultUserKey        = "bagbank_user"
	DefaultErrorMessageJP = "detail"
)

// APIConfig configures the client for the remote BagBank REST API and the storage key
// names used by the session. Variables are read with the BAGBANK_ prefix.
type APIConfig struct {
	// BaseURL is the API root, e.g. "https://api.bagbank.example/api/v1".
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000/api/v1"`

	// TimeoutMS bounds every API request, in milliseconds.
	TimeoutMS int `env:"API_TIMEOUT_MS" envDefault:"10000"`

	// TokenKey is the storage key holding the bearer token.
	TokenKey string `env:"AUTH_STORAGE_KEY" envDefault:"bagbank_token"`

	// UserKey is the storage key holding the cached profile JSON.
	UserKey string `env:"USER_STORAGE_KEY" envDefault:"bagbank_user"`

	// ErrorMessagePath is a JMESPath expression that selects a human readable message
	// from an API error body. The first expression that yields a string wins.
	ErrorMessagePath []string `env:"API_ERROR_PATH" envDefault:"detail;message;detail[0].msg;error" envSeparator:";"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = DefaultAPIBaseURL
	}
	if a.TimeoutMS <= 0 {
		a.TimeoutMS = DefaultAPITimeoutMS
	}
	if strings.TrimSpace(a.TokenKey) == "" {
		a.TokenKey = DefaultTokenKey
	}
	if strings.TrimSpace(a.UserKey) == "" {
		a.UserKey = DefaultUserKey
	}

	paths := a.ErrorMessagePath[:0]
	for _, p := range a.ErrorMessagePath {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		paths = append(paths, DefaultErrorMessageJP)
	}
	a.ErrorMessagePath = paths
}

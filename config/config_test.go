package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != DefaultAPIBaseURL {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, DefaultAPIBaseURL)
	}
	if cfg.API.Timeout() != 10*time.Second {
		t.Errorf("API.Timeout() = %v, want 10s", cfg.API.Timeout())
	}
	if cfg.API.TokenKey != "bagbank_token" || cfg.API.UserKey != "bagbank_user" {
		t.Errorf("storage keys = %q/%q", cfg.API.TokenKey, cfg.API.UserKey)
	}
	if cfg.HTTP.SessionCookie != "bagbank_sid" {
		t.Errorf("HTTP.SessionCookie = %q", cfg.HTTP.SessionCookie)
	}
	if cfg.Session.DurableBackend != DurableBackendRedis || !cfg.UsesRedis() {
		t.Errorf("Session.DurableBackend = %q", cfg.Session.DurableBackend)
	}
	if cfg.Redis.KeyPrefix != "bagbank:session:" {
		t.Errorf("Redis.KeyPrefix = %q", cfg.Redis.KeyPrefix)
	}
}

func TestAppConfig_ParseAPIEnv(t *testing.T) {
	t.Setenv("BAGBANK_API_BASE_URL", "https://api.bagbank.example/api/v1/")
	t.Setenv("BAGBANK_API_TIMEOUT_MS", "2500")
	t.Setenv("BAGBANK_AUTH_STORAGE_KEY", "bb_token")
	t.Setenv("BAGBANK_USER_STORAGE_KEY", "bb_user")
	t.Setenv("BAGBANK_API_ERROR_PATH", "detail; errors[0].message ;")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://api.bagbank.example/api/v1" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 2500*time.Millisecond {
		t.Errorf("API.Timeout() = %v", cfg.API.Timeout())
	}
	if cfg.API.TokenKey != "bb_token" || cfg.API.UserKey != "bb_user" {
		t.Errorf("storage keys = %q/%q", cfg.API.TokenKey, cfg.API.UserKey)
	}
	want := []string{"detail", "errors[0].message"}
	if !reflect.DeepEqual(cfg.API.ErrorMessagePath, want) {
		t.Errorf("API.ErrorMessagePath = %#v, want %#v", cfg.API.ErrorMessagePath, want)
	}
}

func TestAPIConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name string
		in   APIConfig
		want APIConfig
	}{
		{
			name: "empty values fall back to defaults",
			in:   APIConfig{},
			want: APIConfig{
				BaseURL:          DefaultAPIBaseURL,
				TimeoutMS:        DefaultAPITimeoutMS,
				TokenKey:         DefaultTokenKey,
				UserKey:          DefaultUserKey,
				ErrorMessagePath: []string{DefaultErrorMessageJP},
			},
		},
		{
			name: "negative timeout is reset",
			in: APIConfig{
				BaseURL:          "http://api/",
				TimeoutMS:        -5,
				TokenKey:         "t",
				UserKey:          "u",
				ErrorMessagePath: []string{"message"},
			},
			want: APIConfig{
				BaseURL:          "http://api",
				TimeoutMS:        DefaultAPITimeoutMS,
				TokenKey:         "t",
				UserKey:          "u",
				ErrorMessagePath: []string{"message"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Sanitize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sanitize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSessionConfig_ParseAndSanitize(t *testing.T) {
	t.Setenv("SESSION_DURABLE_BACKEND", "Memory")
	t.Setenv("SESSION_DURABLE_TTL", "48h")
	t.Setenv("SESSION_IDLE_TTL", "10s")
	t.Setenv("SESSION_SWEEP_INTERVAL", "1m")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.Session.DurableBackend != DurableBackendMemory || cfg.UsesRedis() {
		t.Errorf("DurableBackend = %q", cfg.Session.DurableBackend)
	}
	if cfg.Session.DurableTTL != 48*time.Hour {
		t.Errorf("DurableTTL = %v", cfg.Session.DurableTTL)
	}
	if cfg.Session.SweepInterval != 10*time.Second {
		t.Errorf("SweepInterval = %v, want clamped to IdleTTL", cfg.Session.SweepInterval)
	}
}

func TestDurableBackend_UnmarshalTextInvalid(t *testing.T) {
	var d DurableBackend
	if err := d.UnmarshalText([]byte("postgres")); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	h := HTTPConfig{CompressionLevel: 42}
	h.Sanitize()
	if h.CompressionLevel != 9 {
		t.Errorf("CompressionLevel = %d, want 9", h.CompressionLevel)
	}
	if h.SessionCookie != "bagbank_sid" {
		t.Errorf("SessionCookie = %q", h.SessionCookie)
	}

	h = HTTPConfig{CompressionLevel: 0}
	h.Sanitize()
	if h.CompressionLevel != 1 {
		t.Errorf("CompressionLevel = %d, want 1", h.CompressionLevel)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Error("expected dev mode from APP_ENV")
	}
}

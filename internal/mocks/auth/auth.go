// Package auth contains simple hand-written test doubles for the session ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI     = (*FakeAuthAPI)(nil)
	_ ports.Credentials = (*StaticCredentials)(nil)
)

// FakeAuthAPI simulates the remote auth endpoints. By default it accepts one
// username/password pair, issues Token and answers Me with Profile for that token only.
type FakeAuthAPI struct {
	LoginFunc  func(ctx context.Context, username, password string) (string, error)
	MeFunc     func(ctx context.Context, creds ports.Credentials) (domainauth.Profile, error)
	LogoutFunc func(ctx context.Context, creds ports.Credentials) error

	Username string
	Password string
	Token    string
	Profile  domainauth.Profile

	mu      sync.Mutex
	logins  int
	mes     int
	logouts int
}

// NewFakeAuthAPI creates a FakeAuthAPI accepting admin/secret.
func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{
		Username: "admin",
		Password: "secret",
		Token:    "token-admin",
		Profile:  domainauth.Profile{ID: "1", Username: "admin", FullName: "Admin User"},
	}
}

func (f *FakeAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	f.logins++
	f.mu.Unlock()

	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password)
	}
	if username != f.Username || password != f.Password {
		return "", apperrors.InvalidCredentials(errors.New("401 from /auth/login"))
	}
	return f.Token, nil
}

func (f *FakeAuthAPI) Me(ctx context.Context, creds ports.Credentials) (domainauth.Profile, error) {
	f.mu.Lock()
	f.mes++
	f.mu.Unlock()

	if f.MeFunc != nil {
		return f.MeFunc(ctx, creds)
	}
	token := creds.Token(ctx)
	if token == "" || token != f.Token {
		creds.HandleUnauthorized(token)
		return domainauth.Profile{}, apperrors.AuthorizationExpired(errors.New("401 from /auth/me"))
	}
	return f.Profile, nil
}

func (f *FakeAuthAPI) Logout(ctx context.Context, creds ports.Credentials) error {
	f.mu.Lock()
	f.logouts++
	f.mu.Unlock()

	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx, creds)
	}
	return nil
}

// Calls reports how many times each endpoint was hit.
func (f *FakeAuthAPI) Calls() (logins, mes, logouts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins, f.mes, f.logouts
}

// StaticCredentials is a fixed token that records the 401s reported to it.
type StaticCredentials struct {
	Value string

	mu           sync.Mutex
	unauthorized []string
}

func (c *StaticCredentials) Token(context.Context) string { return c.Value }

func (c *StaticCredentials) HandleUnauthorized(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorized = append(c.unauthorized, token)
}

// Unauthorized returns the tokens reported via HandleUnauthorized.
func (c *StaticCredentials) Unauthorized() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.unauthorized...)
}

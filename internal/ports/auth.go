// Package ports defines interfaces (hexagonal ports) for the session and the BagBank API.
// Implementations live in internal/adapters; orchestration in internal/service and internal/session.
package ports

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
)

// ErrNotFound is returned by a StorageArea when a key is absent or expired.
var ErrNotFound = errors.New("key not found")

// StorageArea is one of the two key/value areas that persist a session:
// durable (survives a browser restart) or ephemeral (browser session only).
type StorageArea interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Credentials is what the request pipeline needs from a session: the bearer token to
// attach and somewhere to report a 401.
type Credentials interface {
	// Token returns the current bearer token or "" when signed out.
	Token(ctx context.Context) string
	// HandleUnauthorized is called once per failed request with the token that request carried.
	HandleUnauthorized(token string)
}

// AuthAPI is the remote authentication surface.
type AuthAPI interface {
	// Login exchanges a username and password for an access token.
	Login(ctx context.Context, username, password string) (string, error)
	// Me returns the profile for the session's token.
	Me(ctx context.Context, creds Credentials) (domainauth.Profile, error)
	// Logout tells the API the token is no longer in use.
	Logout(ctx context.Context, creds Credentials) error
}

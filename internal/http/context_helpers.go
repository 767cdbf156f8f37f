package httpx

import (
	"context"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the operator session.
// If st is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, st *session.Store) context.Context {
	if st == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, st)
}

// GetSessionFromContext returns the session attached by RequireSession and whether one was present.
func GetSessionFromContext(ctx context.Context) (*session.Store, bool) {
	st, ok := ctx.Value(sessionKey{}).(*session.Store)
	return st, ok && st != nil
}

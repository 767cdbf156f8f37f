package httpx

import (
	"context"
	"net/http"
	"time"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

// DefaultSessionCookieName is used when SessionCookie.Name is empty.
const DefaultSessionCookieName = "bagbank_sid"

// SessionRequirer resolves a browser session id to a signed-in session.
type SessionRequirer interface {
	Require(ctx context.Context, sid string) (*session.Store, error)
}

// SessionCookie describes the cookie carrying the browser session id.
type SessionCookie struct {
	Name   string
	Domain string
	// DurableTTL is the cookie lifetime after a "remember me" login. Other logins get a
	// browser-session cookie.
	DurableTTL time.Duration
}

func (c SessionCookie) name() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

// Read returns the session id the browser sent, or "".
func (c SessionCookie) Read(r *http.Request) string {
	ck, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return ck.Value
}

// Set issues the cookie for sid, persistent only for the durable scope.
func (c SessionCookie) Set(w http.ResponseWriter, r *http.Request, sid string, scope domainauth.PersistenceScope) {
	ck := &http.Cookie{
		Name:     c.name(),
		Value:    sid,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
	if scope == domainauth.ScopeDurable && c.DurableTTL > 0 {
		ck.MaxAge = int(c.DurableTTL.Seconds())
		ck.Expires = time.Now().Add(c.DurableTTL)
	}
	http.SetCookie(w, ck)
}

// Clear expires the cookie.
func (c SessionCookie) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// RequireSession gates protected routes. It waits for the session to finish loading,
// sends signed-out operators to /login and attaches the session to the request context.
func RequireSession(auth SessionRequirer, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, err := auth.Require(r.Context(), cookie.Read(r))
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), st)))
			case apperrors.IsAuthorizationExpired(err):
				redirectToLogin(w, r)
			case apperrors.IsCanceled(err):
				// Client went away while the session was loading.
			default:
				http.Error(w, "session storage unavailable", http.StatusServiceUnavailable)
			}
		})
	}
}

package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

const (
	msgLoginFailed       = "Login failed. Please try again."
	defaultLoginRedirect = "/dashboard"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Open(ctx context.Context, sid string) (*session.Store, error)
	Login(ctx context.Context, previousSID string, in service.LoginInput) (*service.LoginResult, error)
	Logout(ctx context.Context, sid string)
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers serves the login page, logout and session status.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	T      *TemplateRenderer
	Cookie SessionCookie
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// loginForm is what the login template shows.
type loginForm struct {
	Username    string
	Remember    bool
	RedirectURI string
	Error       string
}

// LoginPage renders the login form. An operator who is already signed in goes straight on.
// GET /login?redirect_uri=<optional>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirectURI := postLoginRedirect(r.URL.Query().Get("redirect_uri"))

	if sid := h.Cookie.Read(r); sid != "" {
		if st, err := h.Svc.Open(r.Context(), sid); err == nil && st.Wait(r.Context()) == nil && st.State().Authenticated() {
			http.Redirect(w, r, redirectURI, http.StatusSeeOther)
			return
		}
	}

	h.renderLogin(w, r, loginForm{Remember: true, RedirectURI: redirectURI})
}

// Login checks the submitted credentials and starts a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username:    strings.TrimSpace(r.PostFormValue("username")),
		Remember:    isChecked(r.PostForm["remember"]),
		RedirectURI: postLoginRedirect(r.PostFormValue("redirect_uri")),
	}

	res, err := h.Svc.Login(r.Context(), h.Cookie.Read(r), service.LoginInput{
		Username: form.Username,
		Password: r.PostFormValue("password"),
		Remember: form.Remember,
	})
	if err != nil {
		switch {
		case apperrors.IsCanceled(err):
			http.Error(w, "request canceled", http.StatusRequestTimeout)
			return
		case apperrors.IsInvalidCredentials(err), apperrors.IsValidation(err):
			form.Error = apperrors.UserMessage(err, apperrors.InvalidCredentialsMessage)
		default:
			h.logger().WarnContext(r.Context(), "login failed", "error", err)
			form.Error = apperrors.UserMessage(err, msgLoginFailed)
		}
		h.renderLogin(w, r, form)
		return
	}

	h.Cookie.Set(w, r, res.Session.ID(), res.State.Scope)
	h.logger().InfoContext(r.Context(), "operator signed in", "scope", string(res.State.Scope))
	redirect(w, r, withFlash(form.RedirectURI, "logged-in"))
}

// Logout ends the session and returns to the login page. Remote failures are ignored.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Svc.Logout(r.Context(), h.Cookie.Read(r))
	h.Cookie.Clear(w, r)
	redirect(w, r, withFlash("/login", "logged-out"))
}

type sessionUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	ImageURL    string `json:"image_url,omitempty"`
}

type sessionStatus struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	Scope         string       `json:"scope,omitempty"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	User          *sessionUser `json:"user,omitempty"`
}

// Status reports the session behind the cookie without waiting for a profile fetch.
// GET /session/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sid := h.Cookie.Read(r)
	if sid == "" {
		WriteJSON(w, http.StatusOK, sessionStatus{})
		return
	}
	st, err := h.Svc.Open(r.Context(), sid)
	if err != nil {
		h.logger().WarnContext(r.Context(), "session status unavailable", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "session_unavailable", "Session storage is unavailable.")
		return
	}

	WriteJSON(w, http.StatusOK, statusOf(st))
}

func statusOf(st *session.Store) sessionStatus {
	state := st.State()
	out := sessionStatus{Authenticated: state.Authenticated(), Loading: state.Loading}
	if !out.Authenticated {
		return out
	}
	out.Scope = string(state.Scope)
	if exp, ok := session.TokenExpiry(state.Token); ok {
		out.ExpiresAt = &exp
	}
	out.User = &sessionUser{
		Username:    state.User.Username,
		DisplayName: state.User.DisplayName(),
		ImageURL:    state.User.ImageURL,
	}
	return out
}

// renderLogin renders the whole login page, or only the card when htmx swaps it.
func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, form loginForm) {
	data := NewTemplateData(r, PageMeta{Title: "Login - BagBank Admin", PageTitle: "Login"}).
		With("Login", form).
		Build()

	name := "login-layout"
	if WantsPartial(r) {
		name = "login-card"
	}
	if err := h.T.Render(w, name, data); err != nil {
		h.logger().ErrorContext(r.Context(), "login render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// postLoginRedirect picks where a successful login lands.
func postLoginRedirect(candidate string) string {
	if strings.TrimSpace(candidate) == "" {
		return defaultLoginRedirect
	}
	p := safeRedirectPath(candidate)
	if p == "/" || strings.HasPrefix(p, "/login") {
		return defaultLoginRedirect
	}
	return p
}

// isChecked reports whether a checkbox was ticked, tolerating a hidden fallback input.
func isChecked(values []string) bool {
	for _, v := range values {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true
		}
	}
	return false
}

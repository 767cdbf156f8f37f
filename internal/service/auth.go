package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

// MsgMissingCredentials is shown when the login form is submitted incomplete.
const MsgMissingCredentials = "Please enter username and password"

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions *session.Manager
	Logger   *slog.Logger
}

// AuthService connects browser session ids to session stores and runs the login and
// logout flows.
type AuthService struct {
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("session manager is required")
	}
	return &AuthService{sessions: opts.Sessions, logger: loggerOrDefault(opts.Logger, "auth_service")}
}

// LoginInput is the submitted login form.
type LoginInput struct {
	Username string
	Password string
	Remember bool
}

// LoginResult carries the session that now holds the token. Its id replaces the
// browser's previous session id.
type LoginResult struct {
	Session *session.Store
	State   domainauth.State
}

// Open returns the session for a browser session id, starting a new one when the id is
// empty or unknown.
func (s *AuthService) Open(ctx context.Context, sid string) (*session.Store, error) {
	st, err := s.sessions.Open(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return st, nil
}

// Login checks the form, then signs in under a fresh session id. The previous session,
// if any, is dropped once the new one is active.
func (s *AuthService) Login(ctx context.Context, previousSID string, in LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, apperrors.Validation(MsgMissingCredentials)
	}

	st, err := s.sessions.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	state, err := st.Login(ctx, strings.TrimSpace(in.Username), in.Password, in.Remember)
	if err != nil {
		s.sessions.Forget(st.ID())
		if !apperrors.IsInvalidCredentials(err) {
			s.logger.WarnContext(ctx, "login failed", "error", err)
		}
		return nil, err
	}

	if previousSID != "" && previousSID != st.ID() {
		s.sessions.Forget(previousSID)
	}
	return &LoginResult{Session: st, State: state}, nil
}

// Logout ends the session behind sid. It never fails; a missing session is already
// logged out.
func (s *AuthService) Logout(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	st, err := s.sessions.Open(ctx, sid)
	if err != nil {
		s.logger.DebugContext(ctx, "logout without session", "error", err)
		return
	}
	st.Logout(ctx)
	s.sessions.Forget(st.ID())
	if st.ID() != sid {
		s.sessions.Forget(sid)
	}
}

var errNoSession = errors.New("no active session")

// Require returns the session for sid once it has finished loading, or an
// AuthorizationExpired error when the operator is not signed in.
func (s *AuthService) Require(ctx context.Context, sid string) (*session.Store, error) {
	st, err := s.Open(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := st.Wait(ctx); err != nil {
		return nil, apperrors.Reclassify(err, apperrors.ErrCodeCanceled, "request canceled")
	}
	if !st.State().Authenticated() {
		return st, apperrors.AuthorizationExpired(errNoSession)
	}
	return st, nil
}

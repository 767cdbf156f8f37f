// Package session holds operator sessions: the bearer token, the cached profile and the
// loading flag, persisted across requests in a durable and an ephemeral storage area.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

const (
	// teardownTimeout bounds storage cleanup triggered outside a request context.
	teardownTimeout = 5 * time.Second
	// initFetchTimeout bounds the background profile fetch started by Init.
	initFetchTimeout = 15 * time.Second
)

var _ ports.Credentials = (*Store)(nil)

// Reason tells subscribers why the state changed.
type Reason string

const (
	ReasonLoading Reason = "loading"
	ReasonReady   Reason = "ready"
	ReasonLogin   Reason = "login"
	ReasonLogout  Reason = "logout"
	ReasonExpired Reason = "expired"
	ReasonProfile Reason = "profile"
)

// Event is delivered to subscribers after every state change.
type Event struct {
	Reason Reason
	State  domainauth.State
}

// Options groups the dependencies of a Store.
type Options struct {
	// ID addresses the session's keys inside both storage areas.
	ID        string
	Auth      ports.AuthAPI
	Durable   ports.StorageArea
	Ephemeral ports.StorageArea

	TokenKey string
	UserKey  string

	DurableTTL   time.Duration
	EphemeralTTL time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

// Store is one operator session. It is the only writer of the session's storage keys and
// the Credentials every API call for that operator is made with.
type Store struct {
	id        string
	auth      ports.AuthAPI
	durable   ports.StorageArea
	ephemeral ports.StorageArea
	tokenKey  string
	userKey   string

	durableTTL   time.Duration
	ephemeralTTL time.Duration

	logger *slog.Logger
	now    func() time.Time

	fetches singleflight.Group
	views   *Views

	initOnce  sync.Once
	readyOnce sync.Once
	ready     chan struct{}

	mu          sync.Mutex
	token       string
	user        *domainauth.Profile
	scope       domainauth.PersistenceScope
	loading     bool
	lastRevoked string
	lastSeen    time.Time
	listeners   map[uint64]func(Event)
	nextID      uint64
}

// NewStore builds a session. Call Init before serving it so a persisted token is picked up.
func NewStore(opts Options) (*Store, error) {
	if opts.ID == "" {
		return nil, errors.New("session id is required")
	}
	if opts.Auth == nil {
		return nil, errors.New("auth api is required")
	}
	if opts.Durable == nil || opts.Ephemeral == nil {
		return nil, errors.New("both storage areas are required")
	}
	if opts.TokenKey == "" || opts.UserKey == "" {
		return nil, errors.New("token and user keys are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		id:           opts.ID,
		auth:         opts.Auth,
		durable:      opts.Durable,
		ephemeral:    opts.Ephemeral,
		tokenKey:     opts.ID + ":" + opts.TokenKey,
		userKey:      opts.ID + ":" + opts.UserKey,
		durableTTL:   opts.DurableTTL,
		ephemeralTTL: opts.EphemeralTTL,
		logger:       opts.Logger.With("component", "session"),
		now:          opts.Now,
		views:        NewViews(),
		ready:        make(chan struct{}),
		lastSeen:     opts.Now(),
		listeners:    make(map[uint64]func(Event)),
	}, nil
}

// ID returns the browser session id.
func (s *Store) ID() string { return s.id }

// Views returns the per-view request sequence tracker.
func (s *Store) Views() *Views { return s.views }

// State returns a snapshot of the session.
func (s *Store) State() domainauth.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domainauth.State {
	st := domainauth.State{
		Token:   s.token,
		Loading: s.loading,
		Scope:   s.scope,
	}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

// LastSeen reports when the session was last used.
func (s *Store) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Token returns the persisted bearer token, durable area first, or "" when signed out.
func (s *Store) Token(ctx context.Context) string {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()

	token, _ := s.storedToken(ctx)
	return token
}

func (s *Store) storedToken(ctx context.Context) (string, domainauth.PersistenceScope) {
	areas := []struct {
		area  ports.StorageArea
		scope domainauth.PersistenceScope
	}{
		{s.durable, domainauth.ScopeDurable},
		{s.ephemeral, domainauth.ScopeEphemeral},
	}
	for _, a := range areas {
		token, err := a.area.Get(ctx, s.tokenKey)
		if err == nil && token != "" {
			return token, a.scope
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			s.logger.WarnContext(ctx, "read session token failed", "scope", a.scope, "error", err)
		}
	}
	return "", ""
}

// Init starts the session. When a persisted token exists, Loading is true before Init
// returns and a background profile fetch settles it; otherwise the session is ready at once.
// Only the first call has any effect.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		token, scope := s.storedToken(ctx)
		if token == "" {
			s.finishLoading()
			return
		}

		s.mu.Lock()
		s.loading = true
		s.token = token
		s.scope = scope
		s.mu.Unlock()
		s.notify(ReasonLoading)

		go func() {
			fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), initFetchTimeout)
			defer cancel()
			if _, err := s.FetchProfile(fetchCtx); err != nil {
				s.logger.InfoContext(fetchCtx, "persisted session discarded", "error", err)
			}
			s.finishLoading()
		}()
	})
}

func (s *Store) finishLoading() {
	s.readyOnce.Do(func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		close(s.ready)
		s.notify(ReasonReady)
	})
}

// Ready is closed once the initial profile fetch has settled.
func (s *Store) Ready() <-chan struct{} { return s.ready }

// Wait blocks until the session is ready or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login exchanges credentials for a token, persists it in the area chosen by remember,
// then fetches the profile. A rejected login leaves the session untouched.
func (s *Store) Login(ctx context.Context, username, password string, remember bool) (domainauth.State, error) {
	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return domainauth.State{}, err
	}

	scope := domainauth.ScopeFor(remember)
	target, other, ttl := s.ephemeral, s.durable, s.ephemeralTTL
	if scope == domainauth.ScopeDurable {
		target, other, ttl = s.durable, s.ephemeral, s.capTTL(token, s.durableTTL)
	}

	if delErr := other.Delete(ctx, s.tokenKey, s.userKey); delErr != nil {
		s.logger.WarnContext(ctx, "clear other session area failed", "error", delErr)
	}
	if setErr := target.Set(ctx, s.tokenKey, token, ttl); setErr != nil {
		return domainauth.State{}, apperrors.Wrap(setErr, apperrors.ErrCodeUnavailable,
			"Unable to save the session. Please try again.")
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.scope = scope
	s.lastRevoked = ""
	s.mu.Unlock()

	st, err := s.FetchProfile(ctx)
	if err != nil {
		return domainauth.State{}, fmt.Errorf("fetch profile after login: %w", err)
	}
	s.logger.InfoContext(ctx, "operator logged in", "username", username, "scope", scope)
	s.notify(ReasonLogin)
	return st, nil
}

// Logout notifies the API on a best-effort basis, then clears both areas.
func (s *Store) Logout(ctx context.Context) {
	token := s.Token(ctx)
	if token != "" {
		if err := s.auth.Logout(ctx, s); err != nil {
			s.logger.DebugContext(ctx, "logout notification failed", "error", err)
		}
	}
	s.clear(ctx)

	s.mu.Lock()
	if token != "" {
		s.lastRevoked = token
	}
	s.mu.Unlock()
	s.notify(ReasonLogout)
}

// FetchProfile loads the profile for the stored token. With no token it reports an empty
// session. Any failure tears the session down and is returned. Concurrent callers share
// one request.
func (s *Store) FetchProfile(ctx context.Context) (domainauth.State, error) {
	token, scope := s.storedToken(ctx)
	if token == "" {
		s.mu.Lock()
		s.token, s.user = "", nil
		s.mu.Unlock()
		return domainauth.State{}, nil
	}

	s.mu.Lock()
	if s.token == "" {
		s.token, s.scope = token, scope
	}
	s.mu.Unlock()

	v, err, _ := s.fetches.Do(token, func() (any, error) {
		return s.auth.Me(ctx, s)
	})
	if err != nil {
		s.teardown(ctx, token)
		return domainauth.State{}, err
	}
	profile, _ := v.(domainauth.Profile)

	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		return domainauth.State{}, apperrors.AuthorizationExpired(errors.New("session changed during profile fetch"))
	}
	s.user = &profile
	st := s.snapshotLocked()
	s.mu.Unlock()

	if data, mErr := json.Marshal(profile); mErr == nil {
		if setErr := s.durable.Set(ctx, s.userKey, string(data), s.capTTL(token, s.durableTTL)); setErr != nil {
			s.logger.WarnContext(ctx, "cache profile failed", "error", setErr)
		}
	}
	s.notify(ReasonProfile)
	return st, nil
}

// CachedProfile returns the profile cached in the durable area, if any.
func (s *Store) CachedProfile(ctx context.Context) (*domainauth.Profile, bool) {
	raw, err := s.durable.Get(ctx, s.userKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var p domainauth.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// HandleUnauthorized is the pipeline's 401 hook. The session is torn down at most once
// per token; a 401 for a token that has since been replaced is ignored.
func (s *Store) HandleUnauthorized(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()
	s.teardown(ctx, token)
}

func (s *Store) teardown(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	if token == s.lastRevoked || (s.token != "" && s.token != token) {
		s.mu.Unlock()
		return
	}
	s.lastRevoked = token
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session authorization expired", "session", s.id)
	s.clear(ctx)
	s.notify(ReasonExpired)
}

// clear drops the in-memory state and both storage areas together.
func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.scope = ""
	s.mu.Unlock()

	for _, area := range []ports.StorageArea{s.durable, s.ephemeral} {
		if err := area.Delete(ctx, s.tokenKey, s.userKey); err != nil {
			s.logger.WarnContext(ctx, "clear session area failed", "error", err)
		}
	}
}

// capTTL shortens ttl to the token's own expiry when the token carries one.
func (s *Store) capTTL(token string, ttl time.Duration) time.Duration {
	exp, ok := TokenExpiry(token)
	if !ok {
		return ttl
	}
	remaining := exp.Sub(s.now())
	if remaining > 0 && (ttl <= 0 || remaining < ttl) {
		return remaining
	}
	return ttl
}

// Subscribe registers fn for state changes and returns a function that removes it.
// fn runs on the goroutine that changed the state and must not block.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(reason Reason) {
	s.mu.Lock()
	ev := Event{Reason: reason, State: s.snapshotLocked()}
	fns := make([]func(Event), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

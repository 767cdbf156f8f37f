package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// ManagerOptions groups the dependencies shared by every session.
type ManagerOptions struct {
	Auth      ports.AuthAPI
	Durable   ports.StorageArea
	Ephemeral ports.StorageArea

	TokenKey string
	UserKey  string

	DurableTTL   time.Duration
	EphemeralTTL time.Duration
	// IdleTTL is how long an unused session stays in memory. Its persisted keys are kept.
	IdleTTL time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

// Manager maps browser session ids to stores.
type Manager struct {
	opts   ManagerOptions
	logger *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager validates opts and returns an empty registry.
func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.Auth == nil {
		return nil, errors.New("auth api is required")
	}
	if opts.Durable == nil || opts.Ephemeral == nil {
		return nil, errors.New("both storage areas are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		opts:   opts,
		logger: opts.Logger.With("component", "session_manager"),
		stores: make(map[string]*Store),
	}, nil
}

// Open returns the store for sid, loading a persisted session the first time sid is seen
// by this process. An empty or malformed sid gets a fresh session instead.
func (m *Manager) Open(ctx context.Context, sid string) (*Store, error) {
	if _, err := uuid.Parse(sid); err != nil {
		return m.New(ctx)
	}

	m.mu.Lock()
	st, ok := m.stores[sid]
	if !ok {
		var err error
		st, err = m.newStore(sid)
		if err != nil {
			m.mu.Unlock()
			return nil, err
		}
		m.stores[sid] = st
	}
	m.mu.Unlock()

	st.Init(ctx)
	return st, nil
}

// New starts a session under a freshly generated id.
func (m *Manager) New(ctx context.Context) (*Store, error) {
	sid := uuid.NewString()
	st, err := m.newStore(sid)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.stores[sid] = st
	m.mu.Unlock()

	st.Init(ctx)
	return st, nil
}

func (m *Manager) newStore(sid string) (*Store, error) {
	return NewStore(Options{
		ID:           sid,
		Auth:         m.opts.Auth,
		Durable:      m.opts.Durable,
		Ephemeral:    m.opts.Ephemeral,
		TokenKey:     m.opts.TokenKey,
		UserKey:      m.opts.UserKey,
		DurableTTL:   m.opts.DurableTTL,
		EphemeralTTL: m.opts.EphemeralTTL,
		Logger:       m.opts.Logger,
		Now:          m.opts.Now,
	})
}

// Forget drops sid from memory. Persisted keys are untouched.
func (m *Manager) Forget(sid string) {
	m.mu.Lock()
	delete(m.stores, sid)
	m.mu.Unlock()
}

// Len reports how many sessions are held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// Sweep forgets sessions idle for longer than IdleTTL that are not still loading, and
// returns how many were dropped.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	if m.opts.IdleTTL <= 0 {
		return 0, nil
	}
	cutoff := m.opts.Now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for sid, st := range m.stores {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		select {
		case <-st.Ready():
		default:
			continue
		}
		if st.LastSeen().Before(cutoff) {
			delete(m.stores, sid)
			n++
		}
	}
	if n > 0 {
		m.logger.DebugContext(ctx, "idle sessions swept", "count", n, "remaining", len(m.stores))
	}
	return n, nil
}

// Package memstore provides the in-process ephemeral storage area for operator sessions.
// Values vanish when the process restarts, matching a browser-session lifetime.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

var _ ports.StorageArea = (*Area)(nil)

type entry struct {
	value   string
	expires time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Area is a mutex-guarded map with per-key TTLs. Expired keys are dropped lazily on
// read and in bulk by Sweep.
type Area struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures an Area.
type Option func(*Area)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(a *Area) { a.now = now }
}

// New returns an empty area.
func New(opts ...Option) *Area {
	a := &Area{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get returns the value stored under key or ports.ErrNotFound.
func (a *Area) Get(_ context.Context, key string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, ok := a.entries[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	if e.expired(a.now()) {
		delete(a.entries, key)
		return "", ports.ErrNotFound
	}
	return e.value, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted.
func (a *Area) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}
	if ttl < 0 {
		return errors.New("ttl is already expired")
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expires = a.now().Add(ttl)
	}

	a.mu.Lock()
	a.entries[key] = e
	a.mu.Unlock()
	return nil
}

// Delete removes keys. Missing keys are ignored.
func (a *Area) Delete(_ context.Context, keys ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, k := range keys {
		delete(a.entries, k)
	}
	return nil
}

// Sweep drops every expired key and reports how many were removed.
func (a *Area) Sweep() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	removed := 0
	for k, e := range a.entries {
		if e.expired(now) {
			delete(a.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored keys, expired or not.
func (a *Area) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

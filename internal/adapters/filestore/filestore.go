// Package filestore provides a durable storage area backed by a single JSON file.
// The operator CLI uses it to remember a login between invocations.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

var _ ports.StorageArea = (*Area)(nil)

type record struct {
	Value     string     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Area persists keys to path with 0600 permissions.
type Area struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New returns an area stored at path. The file is created on first write.
func New(path string) *Area {
	return &Area{path: path, now: time.Now}
}

// DefaultPath returns ~/.bagbank/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".bagbank", "session.json"), nil
}

// Path returns the backing file location.
func (a *Area) Path() string { return a.path }

// Get returns the value stored under key or ports.ErrNotFound.
func (a *Area) Get(_ context.Context, key string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.load()
	if err != nil {
		return "", err
	}
	rec, ok := records[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	if rec.ExpiresAt != nil && !a.now().Before(*rec.ExpiresAt) {
		return "", ports.ErrNotFound
	}
	return rec.Value, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted.
func (a *Area) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}
	if ttl < 0 {
		return errors.New("ttl is already expired")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.load()
	if err != nil {
		return err
	}
	rec := record{Value: value}
	if ttl > 0 {
		exp := a.now().Add(ttl).UTC()
		rec.ExpiresAt = &exp
	}
	records[key] = rec
	return a.save(records)
}

// Delete removes keys. When no keys remain the file itself is removed.
func (a *Area) Delete(_ context.Context, keys ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(records, k)
	}
	if len(records) == 0 {
		if rmErr := os.Remove(a.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", rmErr)
		}
		return nil
	}
	return a.save(records)
}

func (a *Area) load() (map[string]record, error) {
	records := map[string]record{}
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return records, nil
}

func (a *Area) save(records map[string]record) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

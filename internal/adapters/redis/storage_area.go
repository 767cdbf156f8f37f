// Package redis provides the Redis-backed durable storage area for operator sessions.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// DefaultPrefix namespaces every key written by the admin panel.
const DefaultPrefix = "bagbank:session:"

var _ ports.StorageArea = (*StorageArea)(nil)

// StorageArea is the durable session area. Values expire through Redis TTLs.
type StorageArea struct {
	client redis.UniversalClient
	prefix string
}

// NewStorageArea creates a Redis storage area with the default key prefix.
func NewStorageArea(client redis.UniversalClient) *StorageArea {
	return &StorageArea{
		client: client,
		prefix: DefaultPrefix,
	}
}

// NewStorageAreaWithPrefix creates a Redis storage area with a custom key prefix.
func NewStorageAreaWithPrefix(client redis.UniversalClient, prefix string) *StorageArea {
	return &StorageArea{
		client: client,
		prefix: prefix,
	}
}

// Get returns the value stored under key or ports.ErrNotFound.
func (s *StorageArea) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ports.ErrNotFound
	}

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted.
func (s *StorageArea) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}
	if ttl < 0 {
		return errors.New("ttl is already expired")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes keys. Missing keys are ignored.
func (s *StorageArea) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			prefixed = append(prefixed, s.prefix+k)
		}
	}
	if len(prefixed) == 0 {
		return nil // Nothing to delete
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

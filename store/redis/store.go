// Package redis provides a Redis-backed durable store for go-session.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-session"
)

var _ session.Store = &Store{}

// Store persists session fields and the activity log in Redis. Keys are
// namespaced with a prefix so several session scopes can share a server.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New creates a Redis-backed store with the default "session:" prefix.
func New(client redis.UniversalClient) *Store {
	return &Store{
		client: client,
		prefix: "session:",
	}
}

// NewWithPrefix creates a Redis-backed store with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

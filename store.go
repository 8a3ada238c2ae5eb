package session

import (
	"context"
	"sync"
)

// Storage keys shared with any UI layer reading the same backing store.
const (
	StorageKeyToken = "token"
	StorageKeyRole  = "userRole"
	StorageKeyUser  = "userId"
	StorageKeyEmail = "email"
	StorageKeyLogs  = "userLogs"
)

var _ Store = &MemoryStore{}

// MemoryStore is an in-process Store. It is the default backend and the
// one tests run against; durable adapters live under store/.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Len reports the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

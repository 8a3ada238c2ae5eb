package session_test

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-session"
)

// failingStore wraps a real store and fails selected operations.
type failingStore struct {
	inner     session.Store
	failGet   bool
	failSet   bool
	failSetOn string
	failDel   bool
}

func (s *failingStore) Get(ctx context.Context, key string) (string, error) {
	if s.failGet {
		return "", errors.New("storage unavailable")
	}
	return s.inner.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet || (s.failSetOn != "" && key == s.failSetOn) {
		return errors.New("storage unavailable")
	}
	return s.inner.Set(ctx, key, value)
}

func (s *failingStore) Remove(ctx context.Context, key string) error {
	if s.failDel {
		return errors.New("storage unavailable")
	}
	return s.inner.Remove(ctx, key)
}

// captureSink records every event it receives and can be told to fail.
type captureSink struct {
	mu     sync.Mutex
	events []session.ActivityEvent
	err    error
}

func (s *captureSink) Record(ctx context.Context, event session.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *captureSink) Events() []session.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]session.ActivityEvent, len(s.events))
	copy(out, s.events)
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

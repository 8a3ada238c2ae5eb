package session

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Store is the durable key-value port backing sessions and the activity
// log. A missing key yields an empty string with a nil error, mirroring
// browser storage semantics; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// TokenGenerator mints the opaque session token. The default produces a
// mock token; deployments that need signed tokens inject their own.
type TokenGenerator interface {
	NewToken(email string, role UserRole) string
}

// IDGenerator produces user ids on login/signup.
type IDGenerator interface {
	NewID(email string, role UserRole, at time.Time) string
}

// IPResolver reports the client address recorded on audit entries.
type IPResolver interface {
	ClientIP() string
}

// SessionManager holds methods to deal with the client-side auth session.
type SessionManager interface {
	Restore(ctx context.Context) (*SessionObject, error)
	Login(ctx context.Context, email, password string) (*SessionObject, error)
	Signup(ctx context.Context, email, password string) (*SessionObject, error)
	Logout(ctx context.Context) error
	HasRole(ctx context.Context, required string) bool
	ResetPassword(ctx context.Context, email string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] SESSION "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] SESSION "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] SESSION "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] SESSION "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

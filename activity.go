package session

import (
	"context"
	"time"
)

// ActivityAction enumerates supported audit actions.
type ActivityAction string

const (
	ActionLogin  ActivityAction = "login"
	ActionLogout ActivityAction = "logout"
)

// ActivityEvent captures audit-friendly information about an auth action.
type ActivityEvent struct {
	UserID     string
	Username   string
	Role       string
	Action     ActivityAction
	TokenLabel string
	OccurredAt time.Time
}

// ActivityLogEntry is one row of the bounded audit trail. Entries are
// immutable once written except for the logout reconciliation path, which
// sets LogoutTime and flips Action on the matching open login entry.
type ActivityLogEntry struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Username   string         `json:"username"`
	Role       string         `json:"role"`
	Action     ActivityAction `json:"action"`
	LoginTime  *time.Time     `json:"loginTime"`
	LogoutTime *time.Time     `json:"logoutTime"`
	IPAddress  string         `json:"ipAddress"`
	TokenName  string         `json:"tokenName"`
}

// IsOpenLogin reports whether the entry represents a login not yet closed.
func (e ActivityLogEntry) IsOpenLogin() bool {
	return e.Action == ActionLogin && e.LogoutTime == nil
}

// ActivitySink consumes activity events for auditing purposes.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySinkFunc adapts a function to the ActivitySink interface.
type ActivitySinkFunc func(ctx context.Context, event ActivityEvent) error

// Record implements ActivitySink.
func (f ActivitySinkFunc) Record(ctx context.Context, event ActivityEvent) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}

type noopActivitySink struct{}

func (noopActivitySink) Record(context.Context, ActivityEvent) error {
	return nil
}

func normalizeActivitySink(s ActivitySink) ActivitySink {
	if s == nil {
		return noopActivitySink{}
	}
	return s
}

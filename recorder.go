package session

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultMaxLogEntries bounds the audit trail; oldest entries are evicted
// first once the bound is reached.
const DefaultMaxLogEntries = 100

var _ ActivitySink = &Recorder{}

// Recorder reconciles login/logout events into the bounded audit trail
// persisted under the "userLogs" storage key.
//
// A logout event closes the first open login entry found for the user
// (sets LogoutTime, flips Action) instead of appending a new row; a logout
// with no open entry is appended standalone. Logins always append, so a
// user logged in from several devices holds several open entries at once.
//
// Record never fails the caller: unreadable or corrupt storage degrades to
// an empty log, and persistence failures are logged and swallowed.
type Recorder struct {
	store      Store
	logger     Logger
	ips        IPResolver
	maxEntries int
	timeNow    func() time.Time
}

// NewRecorder returns a Recorder backed by the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{
		store:      store,
		logger:     defLogger{},
		ips:        MockIPResolver{},
		maxEntries: DefaultMaxLogEntries,
		timeNow:    time.Now,
	}
}

func (r *Recorder) WithLogger(logger Logger) *Recorder {
	r.logger = logger
	return r
}

// WithIPResolver sets the resolver used to stamp entries with a client IP.
func (r *Recorder) WithIPResolver(ips IPResolver) *Recorder {
	r.ips = ips
	return r
}

// WithMaxEntries overrides the audit trail bound. Values below 1 keep the
// default.
func (r *Recorder) WithMaxEntries(max int) *Recorder {
	if max > 0 {
		r.maxEntries = max
	}
	return r
}

// WithTimeProvider overrides the clock, mostly for tests.
func (r *Recorder) WithTimeProvider(now func() time.Time) *Recorder {
	if now != nil {
		r.timeNow = now
	}
	return r
}

// Record implements ActivitySink.
func (r *Recorder) Record(ctx context.Context, event ActivityEvent) error {
	now := event.OccurredAt
	if now.IsZero() {
		now = r.timeNow()
	}

	entries := r.load(ctx)

	if event.Action == ActionLogout {
		if idx := findOpenLogin(entries, event.UserID); idx >= 0 {
			entries[idx].LogoutTime = &now
			entries[idx].Action = ActionLogout
		} else {
			entries = append(entries, r.newEntry(event, nil, &now))
		}
	} else {
		entries = append(entries, r.newEntry(event, &now, nil))
	}

	if len(entries) > r.maxEntries {
		entries = entries[len(entries)-r.maxEntries:]
	}

	r.persist(ctx, entries)

	return nil
}

// Entries returns the current audit trail in insertion order. Unreadable
// or corrupt storage yields an empty slice.
func (r *Recorder) Entries(ctx context.Context) []ActivityLogEntry {
	return r.load(ctx)
}

// Clear wipes the persisted audit trail.
func (r *Recorder) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, StorageKeyLogs)
}

func (r *Recorder) newEntry(event ActivityEvent, loginAt, logoutAt *time.Time) ActivityLogEntry {
	at := event.OccurredAt
	if at.IsZero() {
		if loginAt != nil {
			at = *loginAt
		} else if logoutAt != nil {
			at = *logoutAt
		}
	}

	tokenName := event.TokenLabel
	if tokenName == "" {
		tokenName = DefaultTokenLabel
	}

	return ActivityLogEntry{
		ID:         newEntryID(at),
		UserID:     event.UserID,
		Username:   event.Username,
		Role:       event.Role,
		Action:     event.Action,
		LoginTime:  loginAt,
		LogoutTime: logoutAt,
		IPAddress:  r.ips.ClientIP(),
		TokenName:  tokenName,
	}
}

func (r *Recorder) load(ctx context.Context) []ActivityLogEntry {
	raw, err := r.store.Get(ctx, StorageKeyLogs)
	if err != nil {
		r.logger.Warn("activity log read error, starting empty: %v", err)
		return nil
	}

	if raw == "" {
		return nil
	}

	var entries []ActivityLogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		r.logger.Warn("activity log corrupt, starting empty: %v", err)
		return nil
	}

	return entries
}

func (r *Recorder) persist(ctx context.Context, entries []ActivityLogEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		r.logger.Error("activity log encode error: %v", err)
		return
	}

	if err := r.store.Set(ctx, StorageKeyLogs, string(data)); err != nil {
		r.logger.Warn("activity log write error: %v", err)
	}
}

// findOpenLogin returns the index of the first open login entry for the
// user, or -1. Under correct usage at most one such entry exists per user
// and device, so first match in insertion order is sufficient.
func findOpenLogin(entries []ActivityLogEntry, userID string) int {
	for i, entry := range entries {
		if entry.UserID == userID && entry.IsOpenLogin() {
			return i
		}
	}
	return -1
}

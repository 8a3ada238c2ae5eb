package session

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
)

var _ SessionManager = &Manager{}

// Manager is the single source of truth for "who is logged in". It keeps
// the current session in memory, synchronized with a durable Store so the
// session survives reloads, and notifies an ActivitySink of login/logout.
type Manager struct {
	store      Store
	sink       ActivitySink
	tokens     TokenGenerator
	ids        IDGenerator
	logger     Logger
	tokenLabel string
	timeNow    func() time.Time
	current    *SessionObject
}

// NewManager returns a Manager backed by the given store. By default the
// activity trail is recorded into the same store through a Recorder.
func NewManager(store Store) *Manager {
	return &Manager{
		store:      store,
		sink:       NewRecorder(store),
		tokens:     MockTokenGenerator{},
		ids:        TimestampIDGenerator{},
		logger:     defLogger{},
		tokenLabel: DefaultTokenLabel,
		timeNow:    time.Now,
	}
}

func (m *Manager) WithLogger(logger Logger) *Manager {
	m.logger = logger
	return m
}

// WithActivitySink configures the sink receiving login/logout events.
func (m *Manager) WithActivitySink(sink ActivitySink) *Manager {
	m.sink = normalizeActivitySink(sink)
	return m
}

// WithTokenGenerator sets a custom token generator.
func (m *Manager) WithTokenGenerator(tokens TokenGenerator) *Manager {
	m.tokens = tokens
	return m
}

// WithIDGenerator sets a custom user id generator.
func (m *Manager) WithIDGenerator(ids IDGenerator) *Manager {
	m.ids = ids
	return m
}

// WithTokenLabel sets the token name recorded on audit entries.
func (m *Manager) WithTokenLabel(label string) *Manager {
	if label != "" {
		m.tokenLabel = label
	}
	return m
}

// WithTimeProvider overrides the clock, mostly for tests.
func (m *Manager) WithTimeProvider(now func() time.Time) *Manager {
	if now != nil {
		m.timeNow = now
	}
	return m
}

// Current returns the in-memory session, or nil when logged out.
func (m *Manager) Current() *SessionObject {
	return m.current
}

// RequireSession returns the current session or ErrNoSession. UI gates
// use it after Restore has resolved.
func (m *Manager) RequireSession() (*SessionObject, error) {
	if m.current == nil {
		return nil, ErrNoSession
	}
	return m.current, nil
}

// Restore rehydrates the session from durable storage. It runs once at
// process start and never fails: a storage error or an inconsistent
// persisted state (token without email) degrades to "no session" and
// clears whatever was left behind.
func (m *Manager) Restore(ctx context.Context) (*SessionObject, error) {
	token, err := m.store.Get(ctx, StorageKeyToken)
	if err != nil {
		m.logger.Warn("restore storage read error: %v", err)
		m.clearPersisted(ctx)
		m.current = nil
		return nil, nil
	}

	if token == "" {
		m.current = nil
		return nil, nil
	}

	email, err := m.store.Get(ctx, StorageKeyEmail)
	if err != nil || email == "" {
		// token without email means a partially written session; force
		// the clearing half of a logout, no audit entry required
		m.logger.Warn("restore: %v, forcing logout", ErrInconsistentState)
		m.clearPersisted(ctx)
		m.current = nil
		return nil, nil
	}

	userID, _ := m.store.Get(ctx, StorageKeyUser)
	role, _ := m.store.Get(ctx, StorageKeyRole)

	m.current = &SessionObject{
		UserID: userID,
		Email:  email,
		Role:   UserRole(role),
		Token:  token,
	}

	m.logger.Debug("restored session %s", m.current)

	return m.current, nil
}

// Login authenticates the user. Credentials are validated for shape only;
// the password is accepted but never verified. The role is derived from
// the email and the session is persisted before the login event is
// emitted. Persistence failures surface to the caller without rolling
// back fields already written.
func (m *Manager) Login(ctx context.Context, email, password string) (*SessionObject, error) {
	return m.createSession(ctx, email, password, RoleForEmail(email))
}

// Signup registers the user. Identical to Login except the role is always
// "user"; the resulting audit event is a login.
func (m *Manager) Signup(ctx context.Context, email, password string) (*SessionObject, error) {
	return m.createSession(ctx, email, password, RoleUser)
}

func (m *Manager) createSession(ctx context.Context, email, password string, role UserRole) (*SessionObject, error) {
	creds := Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid credentials")
	}

	now := m.timeNow()
	token := m.tokens.NewToken(email, role)
	userID := m.ids.NewID(email, role, now)

	fields := []struct {
		key   string
		value string
	}{
		{StorageKeyToken, token},
		{StorageKeyRole, string(role)},
		{StorageKeyUser, userID},
		{StorageKeyEmail, email},
	}

	for _, field := range fields {
		if err := m.store.Set(ctx, field.key, field.value); err != nil {
			m.logger.Error("session persist error on %q: %v", field.key, err)
			return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to persist session")
		}
	}

	m.current = &SessionObject{
		UserID: userID,
		Email:  email,
		Role:   role,
		Token:  token,
	}

	m.emitActivity(ctx, ActivityEvent{
		UserID:     userID,
		Username:   email,
		Role:       string(role),
		Action:     ActionLogin,
		OccurredAt: now,
	})

	return m.current, nil
}

// Logout closes the session. It reads identifying fields back from the
// store rather than trusting in-memory state, emits a best-effort logout
// event, then clears the persisted fields. Clearing always completes;
// Logout never returns an error.
func (m *Manager) Logout(ctx context.Context) error {
	userID, _ := m.store.Get(ctx, StorageKeyUser)
	email, _ := m.store.Get(ctx, StorageKeyEmail)
	role, _ := m.store.Get(ctx, StorageKeyRole)

	if userID != "" || email != "" {
		m.emitActivity(ctx, ActivityEvent{
			UserID:     userID,
			Username:   email,
			Role:       role,
			Action:     ActionLogout,
			OccurredAt: m.timeNow(),
		})
	}

	m.clearPersisted(ctx)
	m.current = nil

	return nil
}

// HasRole compares the persisted role against required, case-sensitive.
// It reads the store directly so role checks stay correct across reloads
// before the in-memory session rehydrates.
func (m *Manager) HasRole(ctx context.Context, required string) bool {
	role, err := m.store.Get(ctx, StorageKeyRole)
	if err != nil {
		m.logger.Warn("role read error: %v", err)
		return false
	}
	return role == required
}

// ResetPassword is a placeholder; it always succeeds.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	m.logger.Info("password reset requested for %s", email)
	return nil
}

func (m *Manager) clearPersisted(ctx context.Context) {
	for _, key := range []string{StorageKeyToken, StorageKeyRole, StorageKeyUser, StorageKeyEmail} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.Warn("failed to clear %q: %v", key, err)
		}
	}
}

func (m *Manager) emitActivity(ctx context.Context, event ActivityEvent) {
	sink := normalizeActivitySink(m.sink)

	if event.TokenLabel == "" {
		event.TokenLabel = m.tokenLabel
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = m.timeNow()
	}

	if err := sink.Record(ctx, event); err != nil {
		m.logger.Warn("activity sink record error: %v", err)
	}
}

// Credentials is the payload accepted by Login and Signup.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required),
	)
}

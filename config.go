package session

import (
	"github.com/caarlos0/env/v11"
	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// Config holds environment-driven settings. Storage key names are fixed
// (see StorageKey constants) so any UI sharing the backing store reads
// the same fields.
type Config struct {
	// BaseURL points at the collaborator auth backend.
	BaseURL string `env:"AUTH_API_URL" envDefault:"http://localhost:3000"`

	// MaxLogEntries bounds the audit trail.
	MaxLogEntries int `env:"AUTH_MAX_LOG_ENTRIES" envDefault:"100"`

	// TokenLabel is the token name stamped on audit entries.
	TokenLabel string `env:"AUTH_TOKEN_LABEL" envDefault:"mock-token"`

	// ClientIP, when set, replaces the mock IP resolver with a fixed
	// address.
	ClientIP string `env:"AUTH_CLIENT_IP"`
}

// LoadConfig reads configuration from the environment, loading a local
// .env file first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to parse environment configuration")
	}

	cfg.Sanitize()

	return cfg, nil
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	if c.MaxLogEntries <= 0 {
		c.MaxLogEntries = DefaultMaxLogEntries
	}
	if c.TokenLabel == "" {
		c.TokenLabel = DefaultTokenLabel
	}
}

// NewManagerFromConfig wires a Manager and its Recorder from cfg.
func NewManagerFromConfig(store Store, cfg *Config) *Manager {
	recorder := NewRecorder(store).WithMaxEntries(cfg.MaxLogEntries)
	if cfg.ClientIP != "" {
		recorder.WithIPResolver(StaticIPResolver(cfg.ClientIP))
	}

	return NewManager(store).
		WithActivitySink(recorder).
		WithTokenLabel(cfg.TokenLabel)
}

// NewClientFromConfig builds a backend Client from cfg.
func NewClientFromConfig(cfg *Config) *Client {
	return NewClient(ClientConfig{BaseURL: cfg.BaseURL})
}

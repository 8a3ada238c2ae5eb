package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const (
	defaultLoginPath   = "/api/auth/login"
	defaultSignupPath  = "/api/auth/signup"
	defaultProfilePath = "/api/auth/profile"
)

// ClientConfig holds auth backend configuration.
type ClientConfig struct {
	BaseURL string

	LoginPath   string
	SignupPath  string
	ProfilePath string

	HTTPClient *http.Client
}

// Client wraps the collaborator auth backend. Each call is a single
// request/response exchange: no retries, no structured error payload
// parsing, a generic categorized error on any non-success status.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new backend client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaultLoginPath
	}
	if cfg.SignupPath == "" {
		cfg.SignupPath = defaultSignupPath
	}
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = defaultProfilePath
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		config:     cfg,
		httpClient: client,
	}
}

// AuthResponse is the shape returned by the login and signup endpoints.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserProfile is the backend's user representation.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Login exchanges credentials for a token and user.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, c.config.LoginPath, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers userData and returns the same shape as Login.
func (c *Client) Signup(ctx context.Context, userData Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, c.config.SignupPath, userData, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user's profile using a bearer token.
func (c *Client) Profile(ctx context.Context, token string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+c.config.ProfilePath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	var out UserProfile
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "auth backend request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read auth backend response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return goerrors.New("auth backend returned an error status", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized).
			WithMetadata(map[string]any{
				"status": resp.StatusCode,
				"path":   req.URL.Path,
			})
	}

	if err := json.Unmarshal(body, out); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to decode auth backend response")
	}

	return nil
}

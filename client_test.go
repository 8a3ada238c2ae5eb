package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLoginAndProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var creds session.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "a@x.com", creds.Email)
			assert.Equal(t, "secret", creds.Password)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "backend-token",
				"user": map[string]any{
					"id":    "u1",
					"email": "a@x.com",
					"role":  "user",
				},
			})
		case "/api/auth/profile":
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":    "u1",
				"email": "a@x.com",
				"name":  "Ada",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := session.NewClient(session.ClientConfig{BaseURL: server.URL})

	resp, err := client.Login(context.Background(), session.Credentials{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "backend-token", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)

	profile, err := client.Profile(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "Ada", profile.Name)
}

func TestClientSignup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "backend-token",
			"user":  map[string]any{"id": "u2", "email": "b@x.com"},
		})
	}))
	defer server.Close()

	client := session.NewClient(session.ClientConfig{BaseURL: server.URL})

	resp, err := client.Signup(context.Background(), session.Credentials{Email: "b@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.User.ID)
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	}))
	defer server.Close()

	client := session.NewClient(session.ClientConfig{BaseURL: server.URL})

	_, err := client.Login(context.Background(), session.Credentials{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)

	var richErr *goerrors.Error
	require.True(t, goerrors.As(err, &richErr))
	assert.Equal(t, http.StatusUnauthorized, richErr.Metadata["status"])
}

func TestClientCustomPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "t"})
	}))
	defer server.Close()

	client := session.NewClient(session.ClientConfig{
		BaseURL:   server.URL,
		LoginPath: "/v2/login",
	})

	resp, err := client.Login(context.Background(), session.Credentials{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "t", resp.Token)
}

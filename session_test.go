package session_test

import (
	"testing"

	"github.com/goliatone/go-session"
	"github.com/stretchr/testify/assert"
)

func TestSessionObject(t *testing.T) {
	sess := &session.SessionObject{
		UserID: "user-1693412345678",
		Email:  "a@x.com",
		Role:   session.RoleUser,
		Token:  "mock-token-abc",
	}

	assert.Equal(t, "user-1693412345678", sess.GetUserID())
	assert.Equal(t, "a@x.com", sess.GetEmail())
	assert.Equal(t, session.RoleUser, sess.GetRole())
	assert.Equal(t, "mock-token-abc", sess.GetToken())

	assert.True(t, sess.HasRole("user"))
	assert.False(t, sess.HasRole("admin"))
	assert.False(t, sess.HasRole("User"), "comparison is case-sensitive")
	assert.False(t, sess.IsAdmin())

	stringRep := sess.String()
	assert.Contains(t, stringRep, "user-1693412345678")
	assert.Contains(t, stringRep, "a@x.com")
}

func TestSessionObjectAdmin(t *testing.T) {
	sess := &session.SessionObject{
		UserID: "admin-1693412345678",
		Email:  "admin@x.com",
		Role:   session.RoleAdmin,
	}

	assert.True(t, sess.IsAdmin())
	assert.True(t, sess.HasRole("admin"))
}

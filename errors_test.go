package session_test

import (
	"errors"
	"fmt"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-session"
	"github.com/stretchr/testify/assert"
)

func TestIsInconsistentStateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"inconsistent state sentinel", session.ErrInconsistentState, true},
		{"wrapped sentinel", fmt.Errorf("restore: %w", session.ErrInconsistentState), true},
		{"other sentinel", session.ErrNoSession, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.IsInconsistentStateError(tt.err))
		})
	}
}

func TestSentinelCategories(t *testing.T) {
	var richErr *goerrors.Error

	assert.True(t, goerrors.As(session.ErrInconsistentState, &richErr))
	assert.Equal(t, goerrors.CategoryConflict, richErr.Category)

	assert.True(t, goerrors.As(session.ErrNoSession, &richErr))
	assert.Equal(t, goerrors.CategoryAuth, richErr.Category)
}

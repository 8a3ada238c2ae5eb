package session

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeInconsistentState = "INCONSISTENT_SESSION_STATE"
	textCodeNoSession         = "NO_ACTIVE_SESSION"
)

// ErrInconsistentState is returned when persisted storage holds a token
// without a matching email. Restore treats it as an implicit logout.
var ErrInconsistentState = goerrors.New("persisted session state is inconsistent", goerrors.CategoryConflict).
	WithTextCode(textCodeInconsistentState).
	WithCode(goerrors.CodeConflict)

// ErrNoSession is returned when an operation requires an active session.
var ErrNoSession = goerrors.New("no active session", goerrors.CategoryAuth).
	WithTextCode(textCodeNoSession).
	WithCode(goerrors.CodeUnauthorized)

// IsInconsistentStateError checks whether err stems from a token persisted
// without its email.
func IsInconsistentStateError(err error) bool {
	if err == nil {
		return false
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == textCodeInconsistentState
	}

	return false
}

// Package session implements a minimal client-side authentication session
// manager: it tracks the currently logged-in user, persists a mock
// credential through a small key-value storage port, and reconciles
// login/logout events into a bounded local audit trail.
//
// There is no server-side credential verification and no real token
// signing; the package is meant for client shells, demos, and tests that
// need believable session plumbing without an identity backend.
package session

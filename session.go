package session

import (
	"fmt"
)

// SessionObject is the in-memory representation of the authenticated user.
type SessionObject struct {
	UserID string   `json:"user_id,omitempty"`
	Email  string   `json:"email,omitempty"`
	Role   UserRole `json:"role,omitempty"`
	Token  string   `json:"token,omitempty"`
}

func (s *SessionObject) GetUserID() string {
	return s.UserID
}

func (s *SessionObject) GetEmail() string {
	return s.Email
}

func (s *SessionObject) GetRole() UserRole {
	return s.Role
}

func (s *SessionObject) GetToken() string {
	return s.Token
}

// HasRole checks if the session carries a specific role. Comparison is
// exact, no normalization.
func (s *SessionObject) HasRole(role string) bool {
	return string(s.Role) == role
}

// IsAdmin reports whether the session role is admin.
func (s *SessionObject) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s SessionObject) String() string {
	return fmt.Sprintf(
		"user=%s email=%s role=%s",
		s.UserID,
		s.Email,
		s.Role,
	)
}

package session

import "strings"

// UserRole is the role persisted with the session.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleUser,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}

// RoleForEmail assigns the mock role: any email containing "admin" is an
// admin, everything else is a regular user.
func RoleForEmail(email string) UserRole {
	if strings.Contains(email, "admin") {
		return RoleAdmin
	}
	return RoleUser
}

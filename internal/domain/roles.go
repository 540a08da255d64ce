package domain

// Role is the backend-assigned role string carried in the user profile.
// Comparison is case-sensitive: the backend issues upper-case values and the
// client must not grant privilege on variants like "admin".
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

// IsPrivileged returns true for roles allowed into the admin area.
// Unknown or empty roles are insufficient, never an error.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleHR
}

// IsAdmin returns true only for the ADMIN role.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

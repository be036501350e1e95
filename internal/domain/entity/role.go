package entity

import "slices"

// Role gates the admin-only routes.
type Role string

const (
	// RoleAdmin is assigned to every account created through signup.
	RoleAdmin Role = "Admin"
	// RoleStaff is a restricted operator role.
	RoleStaff Role = "Staff"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return slices.Contains([]Role{RoleAdmin, RoleStaff}, r)
}

// ParseRole maps a stored role name to a Role. An empty value is the column default
// (Admin); anything unrecognised is demoted to Staff.
func ParseRole(s string) Role {
	if s == "" {
		return RoleAdmin
	}

	role := Role(s)
	if !role.IsValid() {
		return RoleStaff
	}

	return role
}

// HasAnyRole reports whether the user holds one of roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	return u != nil && slices.Contains(roles, u.Role)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account of the admin dashboard.
type User struct {
	ID           uuid.UUID `json:"_id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`        // Login identifier, unique across users.
	PasswordHash string    `json:"-"`            // bcrypt hash, never serialized.
	Role         Role      `json:"role"`         // Defaults to RoleAdmin.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.Lastname == "" {
		return u.Firstname
	}

	return u.Firstname + " " + u.Lastname
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(""))
	assert.Equal(t, RoleAdmin, ParseRole("Admin"))
	assert.Equal(t, RoleStaff, ParseRole("Staff"))
	assert.Equal(t, RoleStaff, ParseRole("root"))
}

func TestUser_HasAnyRole(t *testing.T) {
	admin := &User{Role: RoleAdmin}

	assert.True(t, admin.HasAnyRole(RoleAdmin))
	assert.True(t, admin.HasAnyRole(RoleStaff, RoleAdmin))
	assert.False(t, admin.HasAnyRole(RoleStaff))
	assert.False(t, admin.HasAnyRole())

	var nobody *User
	assert.False(t, nobody.HasAnyRole(RoleAdmin))
}

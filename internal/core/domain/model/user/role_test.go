package user_test

import (
	"testing"

	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]user.Role{
		"user":    user.RoleUser,
		"manager": user.RoleManager,
		"ADMIN":   user.RoleAdmin,
		" admin ": user.RoleAdmin,
	}
	for in, want := range cases {
		got, err := user.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := user.ParseRole("owner")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "user", user.RoleUser.String())
	assert.Equal(t, "manager", user.RoleManager.String())
	assert.Equal(t, "admin", user.RoleAdmin.String())
	assert.Equal(t, "unknown", user.UnknownRole.String())
	assert.Equal(t, "unknown", user.Role(42).String())
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, user.RoleManager.Validate())
	require.Error(t, user.UnknownRole.Validate())
	require.Error(t, user.Role(-1).Validate())
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role          user.Role
		staff         bool
		editOthers    bool
		setDelivered  bool
		manageUsers   bool
		purge         bool
		adminSettings bool
	}{
		{role: user.RoleUser},
		{role: user.RoleManager, staff: true, editOthers: true, setDelivered: true},
		{role: user.RoleAdmin, staff: true, editOthers: true, manageUsers: true, purge: true, adminSettings: true},
		{role: user.UnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.staff, tt.role.IsStaff())
			assert.Equal(t, tt.editOthers, tt.role.CanEditOthersOrders())
			assert.Equal(t, tt.setDelivered, tt.role.CanSetDelivered())
			assert.Equal(t, tt.manageUsers, tt.role.CanManageUsers())
			assert.Equal(t, tt.purge, tt.role.CanPurge())
			assert.Equal(t, tt.adminSettings, tt.role.CanManageAdminSettings())
		})
	}
}

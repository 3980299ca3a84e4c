package user_test

import (
	"testing"
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func restoreUser(t *testing.T, id int64, role user.Role, active bool) *user.User {
	t.Helper()
	hash, err := kernel.NewPasswordHash("password1")
	require.NoError(t, err)
	u, err := user.RestoreUser(id, "user"+role.String(), "Name", "", hash, role, active, nil, now)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("registers an active user", func(t *testing.T) {
		u, err := user.NewUser("  Kim.Hangwa ", "김한과", "010-1234-5678", "password1", now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "kim.hangwa", u.Username())
		assert.Equal(t, "김한과", u.Name())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.True(t, u.IsActive())
		assert.True(t, u.PasswordHash().Matches("password1"))
		assert.Zero(t, u.ID())
	})

	t.Run("joins validation errors", func(t *testing.T) {
		u, err := user.NewUser("ab", "", "", "1", now)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "username length")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "password length")
	})
}

func TestRestoreUser_RejectsUnknownRole(t *testing.T) {
	_, err := user.RestoreUser(1, "x", "x", "", kernel.PasswordHash{}, user.UnknownRole, true, nil, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_ZeroValueIsInvalid(t *testing.T) {
	var u *user.User
	assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
}

func TestUser_Authenticate(t *testing.T) {
	t.Run("stamps last login", func(t *testing.T) {
		u := restoreUser(t, 1, user.RoleUser, true)

		require.NoError(t, u.Authenticate("password1", now))
		require.NotNil(t, u.LastLoginAt())
		assert.Equal(t, now, *u.LastLoginAt())
	})

	t.Run("wrong password is unauthenticated", func(t *testing.T) {
		u := restoreUser(t, 1, user.RoleUser, true)

		require.ErrorIs(t, u.Authenticate("nope", now), errs.ErrUnauthenticated)
		assert.Nil(t, u.LastLoginAt())
	})

	t.Run("inactive account is forbidden", func(t *testing.T) {
		u := restoreUser(t, 1, user.RoleUser, false)

		require.ErrorIs(t, u.Authenticate("password1", now), errs.ErrForbidden)
	})
}

func TestUser_ChangeRole(t *testing.T) {
	t.Run("admin promotes user to manager", func(t *testing.T) {
		u := restoreUser(t, 2, user.RoleUser, true)

		require.NoError(t, u.ChangeRole(user.RoleManager, 1, user.RoleAdmin))
		assert.Equal(t, user.RoleManager, u.Role())
	})

	t.Run("manager cannot change roles", func(t *testing.T) {
		u := restoreUser(t, 2, user.RoleUser, true)

		require.ErrorIs(t, u.ChangeRole(user.RoleManager, 1, user.RoleManager), errs.ErrForbidden)
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		u := restoreUser(t, 1, user.RoleAdmin, true)

		require.ErrorIs(t, u.ChangeRole(user.RoleUser, 1, user.RoleAdmin), errs.ErrForbidden)
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("unknown target role is invalid", func(t *testing.T) {
		u := restoreUser(t, 2, user.RoleUser, true)

		require.ErrorIs(t, u.ChangeRole(user.UnknownRole, 1, user.RoleAdmin), errs.ErrValueIsInvalid)
	})
}

func TestUser_SetActive(t *testing.T) {
	u := restoreUser(t, 2, user.RoleManager, true)

	require.NoError(t, u.SetActive(false, 1, user.RoleAdmin))
	assert.False(t, u.IsActive())

	require.ErrorIs(t, u.SetActive(true, 3, user.RoleManager), errs.ErrForbidden)

	self := restoreUser(t, 1, user.RoleAdmin, true)
	require.ErrorIs(t, self.SetActive(false, 1, user.RoleAdmin), errs.ErrForbidden)
}

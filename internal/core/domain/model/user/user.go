// Package user contains the User aggregate and the Role enumeration.
package user

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 50
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an authenticated account.
type User struct {
	id           int64
	username     string
	name         string
	phone        string
	passwordHash kernel.PasswordHash
	role         Role
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers an account with the default user role.
func NewUser(username, name, phone, password string, now time.Time) (*User, error) {
	u := &User{
		role:      RoleUser,
		active:    true,
		createdAt: now,
		phone:     strings.TrimSpace(phone),
		guard:     guard.NewConstructorGuard(),
	}

	hash, hashErr := kernel.NewPasswordHash(password)
	if err := errors.Join(
		u.setUsername(username),
		u.setName(name),
		hashErr,
	); err != nil {
		return nil, err
	}
	u.passwordHash = hash

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(
	id int64,
	username, name, phone string,
	passwordHash kernel.PasswordHash,
	role Role,
	active bool,
	lastLoginAt *time.Time,
	createdAt time.Time,
) (*User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return &User{
		id:           id,
		username:     username,
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() int64                         { return u.id }
func (u *User) Username() string                  { return u.username }
func (u *User) Name() string                      { return u.name }
func (u *User) Phone() string                     { return u.phone }
func (u *User) PasswordHash() kernel.PasswordHash { return u.passwordHash }
func (u *User) Role() Role                        { return u.role }
func (u *User) IsActive() bool                    { return u.active }
func (u *User) LastLoginAt() *time.Time           { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time              { return u.createdAt }

// AssignID is called once by the repository after insert.
func (u *User) AssignID(id int64) {
	if u.id == 0 {
		u.id = id
	}
}

// Authenticate checks the password and activity flag and stamps the login time.
func (u *User) Authenticate(password string, now time.Time) error {
	if !u.passwordHash.Matches(password) {
		return errs.NewUnauthenticatedError("invalid username or password")
	}
	if !u.active {
		return errs.NewForbiddenError("log in with a deactivated account")
	}
	u.lastLoginAt = &now
	return nil
}

// ChangeRole applies a role transition requested by actor. Only admins may
// change roles and nobody may change their own role.
func (u *User) ChangeRole(newRole Role, actorID int64, actorRole Role) error {
	if !actorRole.CanManageUsers() {
		return errs.NewForbiddenError("change user roles")
	}
	if actorID == u.id {
		return errs.NewForbiddenError("change own role")
	}
	if err := newRole.Validate(); err != nil {
		return err
	}
	u.role = newRole
	return nil
}

// SetActive toggles the account. Deactivated users cannot log in.
func (u *User) SetActive(active bool, actorID int64, actorRole Role) error {
	if !actorRole.CanManageUsers() {
		return errs.NewForbiddenError("change account activity")
	}
	if actorID == u.id && !active {
		return errs.NewForbiddenError("deactivate own account")
	}
	u.active = active
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n < usernameMinLength || n > usernameMaxLength {
		return errs.NewValueIsOutOfRangeError("username length", n, usernameMinLength, usernameMaxLength)
	}
	u.username = strings.ToLower(username)
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

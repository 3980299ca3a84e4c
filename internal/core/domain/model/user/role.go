package user

import (
	"fmt"
	"strings"

	"snackshop/internal/pkg/errs"
)

// Role is the closed set of account roles. Access decisions go through the
// capability predicates below rather than comparing role names.
//
//	capability              user  manager  admin
//	IsStaff                  -       x       x
//	CanEditOthersOrders      -       x       x
//	CanSetDelivered          -       x       -
//	CanManageUsers           -       -       x
//	CanPurge                 -       -       x
//	CanManageAdminSettings   -       -       x
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	RoleUser
	RoleManager
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:    "user",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

// ParseRole converts the stored or wire name of a role.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, str := range getRoleStrings() {
		if str == name {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports membership of {manager, admin}.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

func (r Role) CanEditOthersOrders() bool {
	return r.IsStaff()
}

// CanSetDelivered is granted to managers only; admins cannot confirm delivery.
func (r Role) CanSetDelivered() bool {
	return r == RoleManager
}

func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

func (r Role) CanPurge() bool {
	return r == RoleAdmin
}

func (r Role) CanManageAdminSettings() bool {
	return r == RoleAdmin
}

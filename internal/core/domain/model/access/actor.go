// Package access decides who may read and change an order.
//
// Every request is resolved to exactly one Actor:
//   - Anonymous: no session, optionally the order password from the form
//   - Owner: a logged-in account without a staff role
//   - Staff: a manager or admin
//
// Identity failures are ForbiddenError, never ObjectNotFoundError, so a
// caller can tell "no such order" from "not yours".
package access

import "snackshop/internal/core/domain/model/user"

// Actor is the closed set of callers. Only this package implements it.
type Actor interface {
	actor()
}

// Anonymous is a caller without a session.
type Anonymous struct {
	Password string
}

// Owner is an authenticated non-staff account. Password is checked when the
// order was placed without logging in.
type Owner struct {
	UserID   int64
	Password string
}

// Staff is an authenticated manager or admin.
type Staff struct {
	UserID int64
	Role   user.Role
}

func (Anonymous) actor() {}
func (Owner) actor()     {}
func (Staff) actor()     {}

// Resolve maps an optional session user to an actor. userID 0 means no
// session.
func Resolve(userID int64, role user.Role, password string) Actor {
	switch {
	case userID == 0:
		return Anonymous{Password: password}
	case role.IsStaff():
		return Staff{UserID: userID, Role: role}
	default:
		return Owner{UserID: userID, Password: password}
	}
}

package access

import (
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"
)

// AuthorizeRead allows staff, the owning account, or anyone holding the
// order password.
func AuthorizeRead(a Actor, o *order.Order) error {
	switch v := a.(type) {
	case Staff:
		return nil
	case Owner:
		if o.IsOwnedBy(v.UserID) || o.PasswordHash().Matches(v.Password) {
			return nil
		}
	case Anonymous:
		if o.PasswordHash().Matches(v.Password) {
			return nil
		}
	}
	return errs.NewForbiddenError("access this order")
}

// AuthorizeCustomerChange applies the read identity rules and then requires
// the order to still be customer editable. Staff skip the editable check.
func AuthorizeCustomerChange(a Actor, o *order.Order) error {
	if err := AuthorizeRead(a, o); err != nil {
		return err
	}
	if _, ok := a.(Staff); ok {
		return nil
	}
	return o.EnsureCustomerEditable()
}

// RequireStaff returns the staff actor or ForbiddenError.
func RequireStaff(a Actor) (Staff, error) {
	s, ok := a.(Staff)
	if !ok {
		return Staff{}, errs.NewForbiddenError("perform staff operations")
	}
	return s, nil
}

// RequireCapability narrows RequireStaff to a role predicate such as
// user.Role.CanPurge.
func RequireCapability(a Actor, action string, can func(user.Role) bool) (Staff, error) {
	s, err := RequireStaff(a)
	if err != nil {
		return Staff{}, err
	}
	if !can(s.Role) {
		return Staff{}, errs.NewForbiddenError(action)
	}
	return s, nil
}

// IsStaff reports whether a is a Staff actor.
func IsStaff(a Actor) bool {
	_, ok := a.(Staff)
	return ok
}

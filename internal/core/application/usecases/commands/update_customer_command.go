package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

type UpdateCustomerCommand struct {
	customerID int64
	actor      access.Actor
	profile    customer.Profile

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID int64,
	actor access.Actor,
	input CustomerInput,
) (UpdateCustomerCommand, error) {
	var refErr error
	if customerID <= 0 {
		refErr = errs.NewValueIsInvalidError("customerID")
	}
	profile, err := input.toProfile()
	if err = errors.Join(refErr, err); err != nil {
		return UpdateCustomerCommand{}, err
	}
	if actor == nil {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		actor:      actor,
		profile:    profile,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() int64         { return c.customerID }
func (c UpdateCustomerCommand) Actor() access.Actor       { return c.actor }
func (c UpdateCustomerCommand) Profile() customer.Profile { return c.profile }

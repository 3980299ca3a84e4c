package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

type CreateCustomerCommand struct {
	actor   access.Actor
	profile customer.Profile

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(actor access.Actor, input CustomerInput) (CreateCustomerCommand, error) {
	if actor == nil {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("actor")
	}
	profile, err := input.toProfile()
	if err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{actor: actor, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Actor() access.Actor       { return c.actor }
func (c CreateCustomerCommand) Profile() customer.Profile { return c.profile }

package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrSetUserActiveCommandIsNotConstructed = errors.New(
	"SetUserActiveCommand must be created via NewSetUserActiveCommand constructor",
)

type SetUserActiveCommand struct {
	userID int64
	actor  access.Actor
	active bool

	guard guard.ConstructorGuard
}

func NewSetUserActiveCommand(userID int64, actor access.Actor, active bool) (SetUserActiveCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("user id"))
	}
	if actor == nil {
		errList = append(errList, errs.NewValueIsRequiredError("actor"))
	}
	if err := errors.Join(errList...); err != nil {
		return SetUserActiveCommand{}, err
	}

	return SetUserActiveCommand{userID: userID, actor: actor, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (c SetUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActiveCommandIsNotConstructed)
}

func (c SetUserActiveCommand) UserID() int64       { return c.userID }
func (c SetUserActiveCommand) Actor() access.Actor { return c.actor }
func (c SetUserActiveCommand) Active() bool        { return c.active }

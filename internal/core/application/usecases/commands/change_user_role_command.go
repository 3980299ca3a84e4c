package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

type ChangeUserRoleCommand struct {
	userID int64
	actor  access.Actor
	role   user.Role

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(userID int64, actor access.Actor, role string) (ChangeUserRoleCommand, error) {
	var errList []error
	if userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("user id"))
	}
	if actor == nil {
		errList = append(errList, errs.NewValueIsRequiredError("actor"))
	}
	r, err := user.ParseRole(role)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return ChangeUserRoleCommand{userID: userID, actor: actor, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) UserID() int64       { return c.userID }
func (c ChangeUserRoleCommand) Actor() access.Actor { return c.actor }
func (c ChangeUserRoleCommand) Role() user.Role     { return c.role }

package commands

import (
	"errors"
	"strings"

	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct {
	username string
	password string
	name     string
	phone    string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, password, name, phone string) (RegisterUserCommand, error) {
	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		username: username,
		password: password,
		name:     name,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string { return c.username }
func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) Name() string     { return c.name }
func (c RegisterUserCommand) Phone() string    { return c.phone }

package commands

import (
	"errors"
	"strings"

	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand carries credentials and the client fingerprint stored on the
// session row.
type LoginCommand struct {
	username  string
	password  string
	ip        string
	userAgent string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password, ip, userAgent string) (LoginCommand, error) {
	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		username:  strings.ToLower(strings.TrimSpace(username)),
		password:  password,
		ip:        ip,
		userAgent: userAgent,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string  { return c.username }
func (c LoginCommand) Password() string  { return c.password }
func (c LoginCommand) IP() string        { return c.ip }
func (c LoginCommand) UserAgent() string { return c.userAgent }

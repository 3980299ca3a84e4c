package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const importMaxRows = 5000

var ErrImportCustomersCommandIsNotConstructed = errors.New(
	"ImportCustomersCommand must be created via NewImportCustomersCommand constructor",
)

// ImportCustomersCommand carries spreadsheet rows. Rows are validated one by
// one by the handler so a bad row does not reject the file.
type ImportCustomersCommand struct {
	actor access.Actor
	rows  []CustomerInput

	guard guard.ConstructorGuard
}

func NewImportCustomersCommand(actor access.Actor, rows []CustomerInput) (ImportCustomersCommand, error) {
	switch {
	case actor == nil:
		return ImportCustomersCommand{}, errs.NewValueIsRequiredError("actor")
	case len(rows) == 0:
		return ImportCustomersCommand{}, errs.NewValueIsRequiredError("rows")
	case len(rows) > importMaxRows:
		return ImportCustomersCommand{}, errs.NewValueIsOutOfRangeError("rows count", len(rows), 1, importMaxRows)
	}
	return ImportCustomersCommand{actor: actor, rows: rows, guard: guard.NewConstructorGuard()}, nil
}

func (c ImportCustomersCommand) Validate() error {
	return c.guard.Validate(ErrImportCustomersCommandIsNotConstructed)
}

func (c ImportCustomersCommand) Actor() access.Actor   { return c.actor }
func (c ImportCustomersCommand) Rows() []CustomerInput { return c.rows }

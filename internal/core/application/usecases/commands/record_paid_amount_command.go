package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/guard"
)

var ErrRecordPaidAmountCommandIsNotConstructed = errors.New(
	"RecordPaidAmountCommand must be created via NewRecordPaidAmountCommand constructor",
)

// RecordPaidAmountCommand stores the amount actually transferred. A nil
// amount clears it.
type RecordPaidAmountCommand struct {
	orderID int64
	actor   access.Actor
	amount  *int64

	guard guard.ConstructorGuard
}

func NewRecordPaidAmountCommand(orderID int64, actor access.Actor, amount *int64) (RecordPaidAmountCommand, error) {
	if err := validateOrderRef(orderID, actor); err != nil {
		return RecordPaidAmountCommand{}, err
	}
	return RecordPaidAmountCommand{
		orderID: orderID,
		actor:   actor,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaidAmountCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaidAmountCommandIsNotConstructed)
}

func (c RecordPaidAmountCommand) OrderID() int64      { return c.orderID }
func (c RecordPaidAmountCommand) Actor() access.Actor { return c.actor }
func (c RecordPaidAmountCommand) Amount() *int64      { return c.amount }

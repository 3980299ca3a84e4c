package commands

import (
	"errors"
	"strings"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand sets the staff discount of an order. An amount of
// zero removes the discount.
type ApplyDiscountCommand struct {
	orderID int64
	actor   access.Actor
	amount  int64
	reason  string

	guard guard.ConstructorGuard
}

func NewApplyDiscountCommand(
	orderID int64,
	actor access.Actor,
	amount int64,
	reason string,
) (ApplyDiscountCommand, error) {
	if err := validateOrderRef(orderID, actor); err != nil {
		return ApplyDiscountCommand{}, err
	}
	return ApplyDiscountCommand{
		orderID: orderID,
		actor:   actor,
		amount:  amount,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) OrderID() int64      { return c.orderID }
func (c ApplyDiscountCommand) Actor() access.Actor { return c.actor }
func (c ApplyDiscountCommand) Amount() int64       { return c.amount }
func (c ApplyDiscountCommand) Reason() string      { return c.reason }

package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand moves an order to trash on behalf of its customer.
type CancelOrderCommand struct {
	orderID int64
	actor   access.Actor

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID int64, actor access.Actor) (CancelOrderCommand, error) {
	if err := validateOrderRef(orderID, actor); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() int64      { return c.orderID }
func (c CancelOrderCommand) Actor() access.Actor { return c.actor }

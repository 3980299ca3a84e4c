package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to another fulfillment stage.
// With notify set, entering a stage that has an SMS template also texts the
// customer.
type ChangeOrderStatusCommand struct {
	orderID int64
	actor   access.Actor
	status  order.Status
	notify  bool

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID int64,
	actor access.Actor,
	status string,
	notify bool,
) (ChangeOrderStatusCommand, error) {
	st, parseErr := order.ParseStatus(status)
	if err := errors.Join(validateOrderRef(orderID, actor), parseErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		status:  st,
		notify:  notify,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64       { return c.orderID }
func (c ChangeOrderStatusCommand) Actor() access.Actor  { return c.actor }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
func (c ChangeOrderStatusCommand) Notify() bool         { return c.notify }

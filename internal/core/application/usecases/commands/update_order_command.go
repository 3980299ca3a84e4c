package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the customer details of an order. Customers
// may only do this while the order is pending and unpaid; staff at any time.
type UpdateOrderCommand struct {
	orderID        int64
	actor          access.Actor
	details        order.Details
	submittedTotal *int64

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID int64,
	actor access.Actor,
	input OrderDetailsInput,
	submittedTotal *int64,
) (UpdateOrderCommand, error) {
	if err := validateOrderRef(orderID, actor); err != nil {
		return UpdateOrderCommand{}, err
	}

	details, err := input.toDetails()
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:        orderID,
		actor:          actor,
		details:        details,
		submittedTotal: submittedTotal,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64         { return c.orderID }
func (c UpdateOrderCommand) Actor() access.Actor    { return c.actor }
func (c UpdateOrderCommand) Details() order.Details { return c.details }
func (c UpdateOrderCommand) SubmittedTotal() *int64 { return c.submittedTotal }

func validateOrderRef(orderID int64, actor access.Actor) error {
	var joined []error
	if orderID <= 0 {
		joined = append(joined, errs.NewValueIsInvalidError("orderID"))
	}
	if actor == nil {
		joined = append(joined, errs.NewValueIsRequiredError("actor"))
	}
	return errors.Join(joined...)
}

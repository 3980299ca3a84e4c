package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/guard"
)

var ErrUpdateFulfillmentCommandIsNotConstructed = errors.New(
	"UpdateFulfillmentCommand must be created via NewUpdateFulfillmentCommand constructor",
)

// UpdateFulfillmentCommand edits the scheduled, seller-shipped and delivered
// dates of an order. Each date is a keep/clear/set change.
type UpdateFulfillmentCommand struct {
	orderID     int64
	actor       access.Actor
	fulfillment order.Fulfillment

	guard guard.ConstructorGuard
}

func NewUpdateFulfillmentCommand(
	orderID int64,
	actor access.Actor,
	fulfillment order.Fulfillment,
) (UpdateFulfillmentCommand, error) {
	if err := validateOrderRef(orderID, actor); err != nil {
		return UpdateFulfillmentCommand{}, err
	}
	return UpdateFulfillmentCommand{
		orderID:     orderID,
		actor:       actor,
		fulfillment: fulfillment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFulfillmentCommandIsNotConstructed)
}

func (c UpdateFulfillmentCommand) OrderID() int64                 { return c.orderID }
func (c UpdateFulfillmentCommand) Actor() access.Actor            { return c.actor }
func (c UpdateFulfillmentCommand) Fulfillment() order.Fulfillment { return c.fulfillment }

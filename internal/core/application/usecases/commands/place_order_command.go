package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a public order form submission.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(input, "4821", nil, &submittedTotal)
//	if err != nil {
//	    return err // field errors for the form
//	}
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	details        order.Details
	password       string
	ownerID        *int64
	submittedTotal *int64

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand parses the form. password may be empty when ownerID
// is set; submittedTotal may be nil when the client did not show a total.
func NewPlaceOrderCommand(
	input OrderDetailsInput,
	password string,
	ownerID *int64,
	submittedTotal *int64,
) (PlaceOrderCommand, error) {
	details, err := input.toDetails()
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		details:        details,
		password:       password,
		ownerID:        ownerID,
		submittedTotal: submittedTotal,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Details() order.Details { return c.details }
func (c PlaceOrderCommand) Password() string       { return c.password }
func (c PlaceOrderCommand) OwnerID() *int64        { return c.ownerID }
func (c PlaceOrderCommand) SubmittedTotal() *int64 { return c.submittedTotal }

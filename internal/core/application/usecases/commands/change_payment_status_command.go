package commands

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand moves the payment machine of an order.
type ChangePaymentStatusCommand struct {
	orderID       int64
	actor         access.Actor
	paymentStatus order.PaymentStatus
	notify        bool

	guard guard.ConstructorGuard
}

func NewChangePaymentStatusCommand(
	orderID int64,
	actor access.Actor,
	paymentStatus string,
	notify bool,
) (ChangePaymentStatusCommand, error) {
	ps, parseErr := order.ParsePaymentStatus(paymentStatus)
	if err := errors.Join(validateOrderRef(orderID, actor), parseErr); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return ChangePaymentStatusCommand{
		orderID:       orderID,
		actor:         actor,
		paymentStatus: ps,
		notify:        notify,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

func (c ChangePaymentStatusCommand) OrderID() int64                     { return c.orderID }
func (c ChangePaymentStatusCommand) Actor() access.Actor                { return c.actor }
func (c ChangePaymentStatusCommand) PaymentStatus() order.PaymentStatus { return c.paymentStatus }
func (c ChangePaymentStatusCommand) Notify() bool                       { return c.notify }

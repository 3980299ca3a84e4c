package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/services"
)

// ApplyDiscountCommandHandler changes the order total by the discount and
// carries the difference into the customer's total spent.
type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.CustomerLedger
}

func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{uowFactory: uowFactory, ledger: services.NewCustomerLedger()}
}

func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	staff, err := access.RequireStaff(cmd.Actor())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	oldTotal := o.TotalAmount()
	if err = o.ApplyDiscount(cmd.Amount(), cmd.Reason(), staff.Role, now); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	err = adjustCustomerSpent(ctx, uow.CustomerRepository(), h.ledger, o.Details().Phone, oldTotal, o.TotalAmount(), now)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/services"
)

// CancelOrderCommandHandler trashes an order and takes it out of its
// customer's statistics. Customers need the order to be editable; staff use
// the trash commands but are accepted here too.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.CustomerLedger
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewCustomerLedger(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = access.AuthorizeCustomerChange(cmd.Actor(), o); err != nil {
		return err
	}

	now := time.Now()
	if access.IsStaff(cmd.Actor()) {
		if err = o.MoveToTrash(now); err != nil {
			return err
		}
		err = repo.Update(ctx, o)
	} else {
		if err = o.Cancel(now); err != nil {
			return err
		}
		err = repo.UpdateIfCustomerEditable(ctx, o)
	}
	if err != nil {
		return err
	}

	if err = followOrderTrash(ctx, uow.CustomerRepository(), h.ledger, o, false, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

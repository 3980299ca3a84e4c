package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
)

// UpdateOrderCommandHandler applies a details edit. Identity is checked
// before state, so a stranger gets ForbiddenError even on a locked order.
// The write is conditional on the stored row still being editable, which
// closes the race with a concurrent staff transition.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.SettingsProvider
	ledger     services.CustomerLedger
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.SettingsProvider,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		ledger:     services.NewCustomerLedger(),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pricing, err := h.settings.Pricing(ctx)
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = access.AuthorizeCustomerChange(cmd.Actor(), o); err != nil {
		return err
	}

	now := time.Now()
	oldTotal := o.TotalAmount()
	originalPhone := o.Details().Phone

	if err = o.EditDetails(cmd.Details(), pricing, cmd.SubmittedTotal(), now); err != nil {
		return err
	}

	if access.IsStaff(cmd.Actor()) {
		err = orderRepo.Update(ctx, o)
	} else {
		err = orderRepo.UpdateIfCustomerEditable(ctx, o)
	}
	if err != nil {
		return err
	}

	customers := uow.CustomerRepository()
	if originalPhone.IsEqual(o.Details().Phone) {
		err = adjustCustomerSpent(ctx, customers, h.ledger, originalPhone, oldTotal, o.TotalAmount(), now)
	} else {
		err = moveCustomerOrder(ctx, customers, h.ledger, originalPhone, oldTotal, o, now)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

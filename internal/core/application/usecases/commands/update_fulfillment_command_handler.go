package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
)

type UpdateFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateFulfillmentCommandHandler(uowFactory OrderUoWFactory) UpdateFulfillmentCommandHandler {
	return UpdateFulfillmentCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateFulfillmentCommandHandler) Handle(ctx context.Context, cmd UpdateFulfillmentCommand) error {
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

	if err = o.UpdateFulfillment(cmd.Fulfillment(), staff.Role, time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

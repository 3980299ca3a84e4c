package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
)

type RecordPaidAmountCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordPaidAmountCommandHandler(uowFactory OrderUoWFactory) RecordPaidAmountCommandHandler {
	return RecordPaidAmountCommandHandler{uowFactory: uowFactory}
}

func (h *RecordPaidAmountCommandHandler) Handle(ctx context.Context, cmd RecordPaidAmountCommand) error {
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

	if err = o.RecordActualPaid(cmd.Amount(), staff.Role, time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

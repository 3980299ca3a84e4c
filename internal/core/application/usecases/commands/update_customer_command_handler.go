package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if _, err := access.RequireStaff(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if !c.Phone().IsEqual(cmd.Profile().Phone) {
		other, findErr := repo.FindByPhone(ctx, cmd.Profile().Phone)
		switch {
		case findErr == nil && other.ID() != c.ID():
			return errs.NewConflictError("customer", "with this phone already exists")
		case findErr != nil && !errors.Is(findErr, errs.ErrObjectNotFound):
			return findErr
		}
	}

	if err = c.UpdateProfile(cmd.Profile(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

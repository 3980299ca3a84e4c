package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/pkg/errs"
)

// CreateCustomerCommandHandler adds a customer by hand. The phone must not
// belong to another customer, trashed or not.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if _, err := access.RequireStaff(cmd.Actor()); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	_, err := repo.FindByPhone(ctx, cmd.Profile().Phone)
	switch {
	case err == nil:
		return 0, errs.NewConflictError("customer", "with this phone already exists")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	c, err := customer.NewCustomer(cmd.Profile(), time.Now())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.ID(), nil
}

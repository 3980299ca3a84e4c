package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"
)

// RegisterUserCommandHandler creates an account with the user role.
// Usernames are unique case-insensitively.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.Username(), cmd.Name(), cmd.Phone(), cmd.Password(), time.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.FindByUsername(ctx, u.Username())
	switch {
	case err == nil:
		return 0, errs.NewConflictError("user", "with this username already exists")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return u.ID(), nil
}

package commands

import (
	"context"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
)

// SetUserActiveCommandHandler toggles an account. Deactivation also revokes
// every session of the account in the same transaction.
type SetUserActiveCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewSetUserActiveCommandHandler(uowFactory AccountUoWFactory) SetUserActiveCommandHandler {
	return SetUserActiveCommandHandler{uowFactory: uowFactory}
}

func (h *SetUserActiveCommandHandler) Handle(ctx context.Context, cmd SetUserActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	admin, err := access.RequireCapability(cmd.Actor(), "change account activity", user.Role.CanManageUsers)
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

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = u.SetActive(cmd.Active(), admin.UserID, admin.Role); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	if !cmd.Active() {
		if _, err = uow.SessionRepository().DeleteByUser(ctx, u.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
)

// ChangeUserRoleCommandHandler lets an admin change another account's role.
// Live sessions pick the new role up on their next request.
type ChangeUserRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewChangeUserRoleCommandHandler(uowFactory AccountUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	admin, err := access.RequireCapability(cmd.Actor(), "change user roles", user.Role.CanManageUsers)
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

	if err = u.ChangeRole(cmd.Role(), admin.UserID, admin.Role); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

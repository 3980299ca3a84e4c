package commands

import (
	"context"
	"errors"

	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// LogoutCommandHandler deletes the caller's own session. Logging out twice is
// not an error.
type LogoutCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewLogoutCommandHandler(uowFactory AccountUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{uowFactory: uowFactory}
}

func (h *LogoutCommandHandler) Handle(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return errs.NewValueIsRequiredError("session id")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Delete(ctx, sessionID); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return uow.Commit(ctx)
}

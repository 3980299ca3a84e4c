package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// RevokeSessionsCommandHandler removes sessions on behalf of an admin, or
// on a schedule for expired ones.
type RevokeSessionsCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewRevokeSessionsCommandHandler(uowFactory AccountUoWFactory) RevokeSessionsCommandHandler {
	return RevokeSessionsCommandHandler{uowFactory: uowFactory}
}

// RevokeSession deletes one session. A missing session is ObjectNotFound.
func (h *RevokeSessionsCommandHandler) RevokeSession(
	ctx context.Context,
	actor access.Actor,
	sessionID uuid.UUID,
) error {
	if sessionID == uuid.Nil {
		return errs.NewValueIsRequiredError("session id")
	}
	if _, err := access.RequireCapability(actor, "revoke sessions", user.Role.CanManageUsers); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow AccountUoW) error {
		return uow.SessionRepository().Delete(ctx, sessionID)
	})
}

// RevokeUserSessions deletes every session of userID and returns the count.
func (h *RevokeSessionsCommandHandler) RevokeUserSessions(
	ctx context.Context,
	actor access.Actor,
	userID int64,
) (int64, error) {
	if userID <= 0 {
		return 0, errs.NewValueIsRequiredError("user id")
	}
	if _, err := access.RequireCapability(actor, "revoke sessions", user.Role.CanManageUsers); err != nil {
		return 0, err
	}

	var n int64
	err := h.inTx(ctx, func(uow AccountUoW) error {
		if _, err := uow.UserRepository().Get(ctx, userID); err != nil {
			return err
		}
		var err error
		n, err = uow.SessionRepository().DeleteByUser(ctx, userID)
		return err
	})
	return n, err
}

// PurgeExpired deletes sessions that expired at or before now.
func (h *RevokeSessionsCommandHandler) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := h.inTx(ctx, func(uow AccountUoW) error {
		var err error
		n, err = uow.SessionRepository().DeleteExpired(ctx, now)
		return err
	})
	return n, err
}

func (h *RevokeSessionsCommandHandler) inTx(ctx context.Context, fn func(uow AccountUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

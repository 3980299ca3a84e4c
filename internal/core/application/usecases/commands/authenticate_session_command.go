package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    int64
	Username  string
	Name      string
	Role      user.Role
	SessionID uuid.UUID
	ExpiresAt time.Time
}

func newPrincipal(u *user.User, s *session.Session) Principal {
	return Principal{
		UserID:    u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Role:      u.Role(),
		SessionID: s.ID(),
		ExpiresAt: s.ExpiresAt(),
	}
}

// Actor resolves the principal to an order access actor. password is the
// order password sent with the request, if any.
func (p Principal) Actor(password string) access.Actor {
	return access.Resolve(p.UserID, p.Role, password)
}

// AuthenticateSessionCommandHandler turns a bearer token into a principal.
// The role comes from the user row, not the token, so role changes apply to
// live sessions.
type AuthenticateSessionCommandHandler struct {
	uowFactory AccountUoWFactory
	tokens     ports.TokenIssuer
}

func NewAuthenticateSessionCommandHandler(
	uowFactory AccountUoWFactory,
	tokens ports.TokenIssuer,
) AuthenticateSessionCommandHandler {
	return AuthenticateSessionCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

// Handle takes the raw token rather than a command value; there is nothing
// else to carry.
func (h *AuthenticateSessionCommandHandler) Handle(ctx context.Context, token string) (Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, errs.NewUnauthenticatedError("missing token")
	}

	sessionID, err := h.tokens.Parse(token)
	if err != nil {
		return Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return Principal{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	s, err := sessions.Get(ctx, sessionID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Principal{}, errs.NewUnauthenticatedError("session revoked")
	}
	if err != nil {
		return Principal{}, err
	}

	now := time.Now()
	if s.IsExpired(now) {
		return Principal{}, errs.NewUnauthenticatedError("session expired")
	}

	u, err := uow.UserRepository().Get(ctx, s.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Principal{}, errs.NewUnauthenticatedError("user removed")
	}
	if err != nil {
		return Principal{}, err
	}
	if !u.IsActive() {
		return Principal{}, errs.NewUnauthenticatedError("account deactivated")
	}

	s.Touch(now)
	if err = sessions.Touch(ctx, s); err != nil {
		return Principal{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Principal{}, err
	}

	return newPrincipal(u, s), nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}

// LoginCommandHandler verifies credentials, opens a session and signs a
// token for it. Unknown usernames and wrong passwords are reported the same
// way.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	tokens     ports.TokenIssuer
	sessionTTL time.Duration
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	tokens ports.TokenIssuer,
	sessionTTL time.Duration,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, tokens: tokens, sessionTTL: sessionTTL}
}

func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.FindByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.NewUnauthenticatedError("invalid username or password")
	}
	if err != nil {
		return LoginResult{}, err
	}

	now := time.Now()
	if err = u.Authenticate(cmd.Password(), now); err != nil {
		return LoginResult{}, err
	}

	s, err := session.NewSession(u.ID(), h.sessionTTL, now, cmd.IP(), cmd.UserAgent())
	if err != nil {
		return LoginResult{}, err
	}

	if err = users.Update(ctx, u); err != nil {
		return LoginResult{}, err
	}
	if err = uow.SessionRepository().Add(ctx, s); err != nil {
		return LoginResult{}, err
	}

	token, err := h.tokens.Issue(s.ID(), s.ExpiresAt())
	if err != nil {
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: s.ExpiresAt(),
		Principal: newPrincipal(u, s),
	}, nil
}

package http

import (
	"net/http"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Register handles POST /api/auth/register. New accounts get the user role.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password, req.Name, req.Phone)
	if err != nil {
		return err
	}

	id, err := s.h.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// Login handles POST /api/auth/login. The token is returned in the body and
// as an HttpOnly cookie.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return err
	}

	res, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	p := res.Principal
	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      userResponse{ID: p.UserID, Username: p.Username, Name: p.Name, Role: p.Role.String()},
	})
}

// Logout handles POST /api/auth/logout.
func (s *Server) Logout(c echo.Context) error {
	p, _ := principal(c)
	if err := s.h.Logout.Handle(c.Request().Context(), p.SessionID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/auth/me.
func (s *Server) Me(c echo.Context) error {
	p, _ := principal(c)

	me, err := s.h.Accounts.Me(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, me)
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	users, err := s.h.Accounts.ListUsers(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangeUserRole handles PATCH /api/users/:id/role.
func (s *Server) ChangeUserRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req roleRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, actor(c), req.Role)
	if err != nil {
		return err
	}
	if err = s.h.ChangeUserRole.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetUserActive handles PATCH /api/users/:id/active. Deactivating an account
// does not end its sessions; they are rejected on the next request.
func (s *Server) SetUserActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req activeRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetUserActiveCommand(id, actor(c), req.Active)
	if err != nil {
		return err
	}
	if err = s.h.SetUserActive.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSessions handles GET /api/sessions.
func (s *Server) ListSessions(c echo.Context) error {
	sessions, err := s.h.Accounts.ListSessions(c.Request().Context(), actor(c), s.now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// RevokeSession handles DELETE /api/sessions/:id.
func (s *Server) RevokeSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("session id", err)
	}

	if err = s.h.RevokeSessions.RevokeSession(c.Request().Context(), actor(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RevokeUserSessions handles DELETE /api/users/:id/sessions.
func (s *Server) RevokeUserSessions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	n, err := s.h.RevokeSessions.RevokeUserSessions(c.Request().Context(), actor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"revoked": n})
}

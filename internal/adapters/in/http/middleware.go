package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// SessionCookie carries the token for browser clients.
	SessionCookie = "snackshop_session"

	// OrderPasswordHeader carries the order password of anonymous callers.
	OrderPasswordHeader = "X-Order-Password"

	principalKey = "principal"
	authErrorKey = "auth_error"
)

func bearerToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// authenticate resolves the session token, if any. A bad token leaves the
// request anonymous and remembers the failure for requireLogin.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return next(c)
		}

		p, err := s.h.Authenticate.Handle(c.Request().Context(), token)
		switch {
		case err == nil:
			c.Set(principalKey, p)
		case errors.Is(err, errs.ErrUnauthenticated):
			c.Set(authErrorKey, err)
		default:
			return err
		}
		return next(c)
	}
}

func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := principal(c); ok {
			return next(c)
		}
		if err, ok := c.Get(authErrorKey).(error); ok {
			return err
		}
		return errs.NewUnauthenticatedError("login required")
	}
}

func principal(c echo.Context) (commands.Principal, bool) {
	p, ok := c.Get(principalKey).(commands.Principal)
	return p, ok
}

// actor is the caller of the request as seen by the access rules.
func actor(c echo.Context) access.Actor {
	password := c.Request().Header.Get(OrderPasswordHeader)
	if p, ok := principal(c); ok {
		return p.Actor(password)
	}
	return access.Anonymous{Password: password}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency.Round(time.Microsecond)),
				slog.String("ip", v.RemoteIP),
			}
			if v.RequestID != "" {
				attrs = append(attrs, slog.String("request_id", v.RequestID))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

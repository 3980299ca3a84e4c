// Package session models a server-side login session. The bearer token only
// carries the session id; the session row and the user row are re-read on
// every request so revocation and role changes take effect immediately.
package session

import (
	"errors"
	"time"

	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

type Session struct {
	id         uuid.UUID
	userID     int64
	createdAt  time.Time
	expiresAt  time.Time
	lastSeenAt time.Time
	ip         string
	userAgent  string

	guard guard.ConstructorGuard
}

func NewSession(userID int64, ttl time.Duration, now time.Time, ip, userAgent string) (*Session, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("user id")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("session ttl", errors.New("must be positive"))
	}
	return &Session{
		id:         uuid.New(),
		userID:     userID,
		createdAt:  now,
		expiresAt:  now.Add(ttl),
		lastSeenAt: now,
		ip:         ip,
		userAgent:  userAgent,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func RestoreSession(
	id uuid.UUID,
	userID int64,
	createdAt, expiresAt, lastSeenAt time.Time,
	ip, userAgent string,
) *Session {
	return &Session{
		id:         id,
		userID:     userID,
		createdAt:  createdAt,
		expiresAt:  expiresAt,
		lastSeenAt: lastSeenAt,
		ip:         ip,
		userAgent:  userAgent,
		guard:      guard.NewConstructorGuard(),
	}
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) UserID() int64         { return s.userID }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) ExpiresAt() time.Time  { return s.expiresAt }
func (s *Session) LastSeenAt() time.Time { return s.lastSeenAt }
func (s *Session) IP() string            { return s.ip }
func (s *Session) UserAgent() string     { return s.userAgent }

// IsExpired reports whether the session is no longer usable at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// Touch records activity.
func (s *Session) Touch(now time.Time) {
	s.lastSeenAt = now
}

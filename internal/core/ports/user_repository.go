package ports

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserRepository persists accounts.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id int64) (*user.User, error)

	// FindByUsername matches the lower-cased username.
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	Add(ctx context.Context, s *session.Session) error
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Touch(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser revokes every session of a user and returns how many.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)

	// DeleteExpired removes sessions that expired at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

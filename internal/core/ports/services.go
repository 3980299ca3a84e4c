package ports

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"

	"github.com/google/uuid"
)

// Notifier hands a composed message to the SMS dispatcher. It returns once
// the dispatcher accepted or refused the message; delivery is not tracked.
type Notifier interface {
	Send(ctx context.Context, msg sms.Message) error
}

// SettingsProvider serves the current settings outside of any transaction,
// possibly from a cache.
type SettingsProvider interface {
	Pricing(ctx context.Context) (settings.Pricing, error)
	AdminContact(ctx context.Context) (settings.AdminContact, error)

	// Invalidate drops cached values after a write.
	Invalidate(ctx context.Context) error
}

// TokenIssuer signs and verifies the bearer tokens that carry a session id.
type TokenIssuer interface {
	Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(token string) (uuid.UUID, error)
}

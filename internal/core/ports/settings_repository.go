package ports

import (
	"context"

	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"
)

// SettingsRepository reads and writes the settings key/value table and the
// admin contact row.
type SettingsRepository interface {
	LoadPricing(ctx context.Context) (settings.Pricing, error)
	SavePricing(ctx context.Context, p settings.Pricing) error
	LoadAdminContact(ctx context.Context) (settings.AdminContact, error)
	SaveAdminContact(ctx context.Context, c settings.AdminContact) error
}

// SmsLogRepository appends dispatch attempts.
type SmsLogRepository interface {
	Append(ctx context.Context, n *sms.Notification) error
}

// Package settingscache serves pricing and the admin contact from Redis,
// loading from the settings repository on a miss.
package settingscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	pricingKey      = "snackshop:settings:pricing"
	adminContactKey = "snackshop:settings:admin-contact"
	generationKey   = "snackshop:settings:generation"
)

// Provider implements ports.SettingsProvider. With a nil client every call
// reads through to the repository. Redis failures are logged and also fall
// back to the repository.
//
// Entries are stored under the generation current when the load started.
// Invalidate bumps the generation, so a load racing a settings change can
// only write into a generation nobody reads anymore.
type Provider struct {
	repo   ports.SettingsRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewProvider(
	repo ports.SettingsRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) (*Provider, error) {
	if repo == nil {
		return nil, errs.NewValueIsRequiredError("settings repository")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Provider{repo: repo, client: client, ttl: ttl, logger: logger.With("component", "settings-cache")}, nil
}

func (p *Provider) Pricing(ctx context.Context) (settings.Pricing, error) {
	key, cacheable := p.versioned(ctx, pricingKey)
	var cached settings.Pricing
	if cacheable && p.get(ctx, key, &cached) {
		return cached, nil
	}

	pricing, err := p.repo.LoadPricing(ctx)
	if err != nil {
		return settings.Pricing{}, err
	}
	if cacheable {
		p.set(ctx, key, pricing)
	}
	return pricing, nil
}

func (p *Provider) AdminContact(ctx context.Context) (settings.AdminContact, error) {
	key, cacheable := p.versioned(ctx, adminContactKey)
	var cached settings.AdminContact
	if cacheable && p.get(ctx, key, &cached) {
		return cached, nil
	}

	contact, err := p.repo.LoadAdminContact(ctx)
	if err != nil {
		return settings.AdminContact{}, err
	}
	if cacheable {
		p.set(ctx, key, contact)
	}
	return contact, nil
}

func (p *Provider) Invalidate(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Incr(ctx, generationKey).Err()
}

func (p *Provider) versioned(ctx context.Context, base string) (string, bool) {
	if p.client == nil {
		return "", false
	}

	gen, err := p.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		p.logger.WarnContext(ctx, "cache generation unreadable", "error", err)
		return "", false
	}
	return fmt.Sprintf("%s:%d", base, gen), true
}

func (p *Provider) get(ctx context.Context, key string, dst any) bool {
	raw, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		p.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.logger.WarnContext(ctx, "cache entry unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Provider) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := p.client.Set(ctx, key, raw, p.ttl).Err(); err != nil {
		p.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

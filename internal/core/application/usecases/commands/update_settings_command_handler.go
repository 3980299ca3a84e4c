package commands

import (
	"context"
	"log/slog"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

// UpdateSettingsCommandHandler writes pricing (any staff) and the admin
// contact (admins only) and drops the settings cache afterwards. Existing
// orders keep the prices and costs they were placed with.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
	provider   ports.SettingsProvider
	logger     *slog.Logger
}

func NewUpdateSettingsCommandHandler(
	uowFactory SettingsUoWFactory,
	provider ports.SettingsProvider,
	logger *slog.Logger,
) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     logger.With("component", "settings"),
	}
}

func (h *UpdateSettingsCommandHandler) UpdatePricing(ctx context.Context, actor access.Actor, p settings.Pricing) error {
	if actor == nil {
		return errs.NewValueIsRequiredError("actor")
	}
	if _, err := access.RequireStaff(actor); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := h.inTx(ctx, func(repo ports.SettingsRepository) error {
		return repo.SavePricing(ctx, p)
	}); err != nil {
		return err
	}

	h.invalidate(ctx)
	return nil
}

func (h *UpdateSettingsCommandHandler) UpdateAdminContact(
	ctx context.Context,
	actor access.Actor,
	c settings.AdminContact,
) (settings.AdminContact, error) {
	if actor == nil {
		return settings.AdminContact{}, errs.NewValueIsRequiredError("actor")
	}
	if _, err := access.RequireCapability(actor, "change admin settings", user.Role.CanManageAdminSettings); err != nil {
		return settings.AdminContact{}, err
	}

	normalized, err := c.Normalize()
	if err != nil {
		return settings.AdminContact{}, err
	}

	if err = h.inTx(ctx, func(repo ports.SettingsRepository) error {
		return repo.SaveAdminContact(ctx, normalized)
	}); err != nil {
		return settings.AdminContact{}, err
	}

	h.invalidate(ctx)
	return normalized, nil
}

func (h *UpdateSettingsCommandHandler) inTx(ctx context.Context, fn func(repo ports.SettingsRepository) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.SettingsRepository()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// invalidate only logs on failure: the write already committed and cached
// entries expire on their own.
func (h *UpdateSettingsCommandHandler) invalidate(ctx context.Context) {
	if err := h.provider.Invalidate(ctx); err != nil {
		h.logger.Warn("failed to invalidate settings cache", "error", err)
	}
}

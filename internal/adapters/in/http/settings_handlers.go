package http

import (
	"net/http"

	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/settings"

	"github.com/labstack/echo/v4"
)

// GetPricing handles GET /api/settings. Costs are only shown to staff.
func (s *Server) GetPricing(c echo.Context) error {
	view, err := s.h.Settings.Pricing(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdatePricing handles POST /api/settings.
func (s *Server) UpdatePricing(c echo.Context) error {
	var req pricingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	current, err := s.h.Settings.Pricing(ctx, actor(c))
	if err != nil {
		return err
	}

	if err = s.h.UpdateSettings.UpdatePricing(ctx, actor(c), req.merge(current)); err != nil {
		return err
	}
	return s.GetPricing(c)
}

func (r pricingRequest) merge(cur queries.PricingView) settings.Pricing {
	pick := func(v *int64, fallback int64) int64 {
		if v != nil {
			return *v
		}
		return fallback
	}
	deref := func(v *int64) int64 {
		if v == nil {
			return 0
		}
		return *v
	}

	p := settings.Pricing{
		SmallBoxPrice:         pick(r.SmallBoxPrice, cur.SmallBoxPrice),
		LargeBoxPrice:         pick(r.LargeBoxPrice, cur.LargeBoxPrice),
		WrappingPrice:         pick(r.WrappingPrice, cur.WrappingPrice),
		ShippingFee:           pick(r.ShippingFee, cur.ShippingFee),
		FreeShippingThreshold: cur.FreeShippingThreshold,
		SmallBoxCost:          pick(r.SmallBoxCost, deref(cur.SmallBoxCost)),
		LargeBoxCost:          pick(r.LargeBoxCost, deref(cur.LargeBoxCost)),
		WrappingCost:          pick(r.WrappingCost, deref(cur.WrappingCost)),
	}
	if r.FreeShippingThreshold != nil {
		p.FreeShippingThreshold = *r.FreeShippingThreshold
	}
	return p
}

// GetAdminContact handles GET /api/admin-settings.
func (s *Server) GetAdminContact(c echo.Context) error {
	view, err := s.h.Settings.AdminContact(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateAdminContact handles POST /api/admin-settings.
func (s *Server) UpdateAdminContact(c echo.Context) error {
	var req adminContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	saved, err := s.h.UpdateSettings.UpdateAdminContact(c.Request().Context(), actor(c), settings.AdminContact{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, queries.AdminContactView{
		Name:        saved.Name,
		Phone:       saved.Phone,
		Email:       saved.Email,
		BankAccount: saved.BankAccount,
	})
}

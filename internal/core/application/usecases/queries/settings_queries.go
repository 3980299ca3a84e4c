package queries

import (
	"context"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

// PricingView is the public price list. Unit costs are only filled for
// staff.
type PricingView struct {
	SmallBoxPrice         int64 `json:"smallBoxPrice"`
	LargeBoxPrice         int64 `json:"largeBoxPrice"`
	WrappingPrice         int64 `json:"wrappingPrice"`
	ShippingFee           int64 `json:"shippingFee"`
	FreeShippingThreshold int   `json:"freeShippingThreshold"`

	SmallBoxCost *int64 `json:"smallBoxCost,omitempty"`
	LargeBoxCost *int64 `json:"largeBoxCost,omitempty"`
	WrappingCost *int64 `json:"wrappingCost,omitempty"`
}

// AdminContactView mirrors settings.AdminContact on the wire.
type AdminContactView struct {
	Name        string `json:"adminName"`
	Phone       string `json:"adminPhone"`
	Email       string `json:"adminEmail"`
	BankAccount string `json:"bankAccount"`
}

// SettingsQueryHandler reads settings through the cached provider.
type SettingsQueryHandler struct {
	provider ports.SettingsProvider
}

func NewSettingsQueryHandler(provider ports.SettingsProvider) (SettingsQueryHandler, error) {
	if provider == nil {
		return SettingsQueryHandler{}, errs.NewValueIsRequiredError("provider")
	}
	return SettingsQueryHandler{provider: provider}, nil
}

func (h SettingsQueryHandler) Pricing(ctx context.Context, actor access.Actor) (PricingView, error) {
	p, err := h.provider.Pricing(ctx)
	if err != nil {
		return PricingView{}, err
	}
	return pricingView(p, access.IsStaff(actor)), nil
}

// AdminContact is staff only; the bank account is also quoted to customers
// through the order-received SMS.
func (h SettingsQueryHandler) AdminContact(ctx context.Context, actor access.Actor) (AdminContactView, error) {
	if _, err := access.RequireStaff(actor); err != nil {
		return AdminContactView{}, err
	}
	c, err := h.provider.AdminContact(ctx)
	if err != nil {
		return AdminContactView{}, err
	}
	return AdminContactView{Name: c.Name, Phone: c.Phone, Email: c.Email, BankAccount: c.BankAccount}, nil
}

func pricingView(p settings.Pricing, withCosts bool) PricingView {
	v := PricingView{
		SmallBoxPrice:         p.SmallBoxPrice,
		LargeBoxPrice:         p.LargeBoxPrice,
		WrappingPrice:         p.WrappingPrice,
		ShippingFee:           p.ShippingFee,
		FreeShippingThreshold: p.FreeShippingThreshold,
	}
	if withCosts {
		small, large, wrapping := p.SmallBoxCost, p.LargeBoxCost, p.WrappingCost
		v.SmallBoxCost = &small
		v.LargeBoxCost = &large
		v.WrappingCost = &wrapping
	}
	return v
}

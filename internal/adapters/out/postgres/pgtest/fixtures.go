package pgtest

import (
	"time"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/pricing"
	"snackshop/internal/core/domain/model/settings"
)

// PlacedAt is the creation time of fixture orders.
var PlacedAt = time.Date(2024, 11, 20, 10, 30, 0, 0, time.UTC)

// OrderPassword is the lookup password of fixture orders.
const OrderPassword = "4821"

// NewOrder builds an unsaved pending order with the given phone and name.
func NewOrder(name, phone string, small, large int) (*order.Order, error) {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	addr, err := kernel.NewAddress("06236", "서울시 강남구 테헤란로 1", "101호")
	if err != nil {
		return nil, err
	}

	return order.NewOrder(order.Placement{
		Number: order.NewNumber(PlacedAt),
		Details: order.Details{
			CustomerName: name,
			Phone:        p,
			Address:      addr,
			Quantities:   pricing.Quantities{SmallBoxes: small, LargeBoxes: large},
		},
		Password: OrderPassword,
		Pricing:  settings.DefaultPricing(),
		PlacedAt: PlacedAt,
	})
}

// NewCustomer builds an unsaved customer.
func NewCustomer(name, phone string) (*customer.Customer, error) {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(customer.Profile{Name: name, Phone: p}, PlacedAt)
}

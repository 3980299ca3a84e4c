package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
)

// PlaceOrderResult identifies the stored order.
type PlaceOrderResult struct {
	ID          int64
	Number      order.Number
	ShippingFee int64
	TotalAmount int64
}

// PlaceOrderCommandHandler prices and stores a new order and folds it into
// the customer record of its phone in the same transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.SettingsProvider
	ledger     services.CustomerLedger
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.SettingsProvider,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		ledger:     services.NewCustomerLedger(),
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	pricing, err := h.settings.Pricing(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	now := time.Now()
	o, err := order.NewOrder(order.Placement{
		Number:         order.NewNumber(now),
		Details:        cmd.Details(),
		Password:       cmd.Password(),
		OwnerID:        cmd.OwnerID(),
		Pricing:        pricing,
		SubmittedTotal: cmd.SubmittedTotal(),
		PlacedAt:       now,
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = recordCustomerOrder(ctx, uow.CustomerRepository(), h.ledger, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		ID:          o.ID(),
		Number:      o.Number(),
		ShippingFee: o.ShippingFee(),
		TotalAmount: o.TotalAmount(),
	}, nil
}

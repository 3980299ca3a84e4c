package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
)

// ChangePaymentStatusCommandHandler applies a staff payment transition and
// optionally texts the customer when payment is confirmed.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher smsDispatcher
}

func NewChangePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	smsUoWFactory SmsUoWFactory,
	notifier ports.Notifier,
	settings ports.SettingsProvider,
) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: newSmsDispatcher(smsUoWFactory, notifier, settings),
	}
}

func (h *ChangePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePaymentStatusCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	staff, err := access.RequireStaff(cmd.Actor())
	if err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	changed, err := o.ChangePaymentStatus(cmd.PaymentStatus(), staff.Role, time.Now())
	if err != nil || !changed {
		return TransitionResult{}, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	result := TransitionResult{Changed: true}
	tpl, ok := services.TemplateForPayment(cmd.PaymentStatus())
	if !cmd.Notify() || !ok {
		return result, nil
	}

	h.dispatcher.notify(ctx, &result, tpl, o)
	return result, nil
}

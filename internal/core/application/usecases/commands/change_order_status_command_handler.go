package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
)

// TransitionResult reports what a status or payment command did.
// Notification is set when an SMS was attempted. SmsError carries a failed
// notification; the committed change is not undone by it.
type TransitionResult struct {
	Changed      bool
	Notification *sms.Notification
	SmsError     error
}

// ChangeOrderStatusCommandHandler applies a staff status transition.
// Re-applying the current status changes nothing and sends nothing.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher smsDispatcher
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	smsUoWFactory SmsUoWFactory,
	notifier ports.Notifier,
	settings ports.SettingsProvider,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: newSmsDispatcher(smsUoWFactory, notifier, settings),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	changed, err := o.ChangeStatus(cmd.Status(), staff.Role, time.Now())
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
	tpl, ok := services.TemplateForStatus(cmd.Status())
	if !cmd.Notify() || !ok {
		return result, nil
	}

	h.dispatcher.notify(ctx, &result, tpl, o)
	return result, nil
}

package commands

import (
	"context"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/core/ports"
)

// SendSmsCommandHandler drafts and sends manual messages for an order.
type SendSmsCommandHandler struct {
	uowFactory SmsUoWFactory
	dispatcher smsDispatcher
}

func NewSendSmsCommandHandler(
	uowFactory SmsUoWFactory,
	notifier ports.Notifier,
	settings ports.SettingsProvider,
) SendSmsCommandHandler {
	return SendSmsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: newSmsDispatcher(uowFactory, notifier, settings),
	}
}

// Draft returns the composed message without sending or logging it.
func (h *SendSmsCommandHandler) Draft(ctx context.Context, cmd SendSmsCommand) (sms.Message, error) {
	if err := cmd.Validate(); err != nil {
		return sms.Message{}, err
	}
	if _, err := access.RequireStaff(cmd.Actor()); err != nil {
		return sms.Message{}, err
	}

	return h.draft(ctx, cmd)
}

// Send dispatches the message and logs the attempt. A dispatcher failure
// returns the logged notification together with an UpstreamError.
func (h *SendSmsCommandHandler) Send(ctx context.Context, cmd SendSmsCommand) (sms.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return sms.Notification{}, err
	}
	if _, err := access.RequireStaff(cmd.Actor()); err != nil {
		return sms.Notification{}, err
	}

	msg, err := h.draft(ctx, cmd)
	if err != nil {
		return sms.Notification{}, err
	}
	if cmd.Template() != sms.TemplateCustom && cmd.Text() != "" {
		msg.Text = cmd.Text()
		if err = msg.Validate(); err != nil {
			return sms.Notification{}, err
		}
	}

	return h.dispatcher.send(ctx, msg)
}

func (h *SendSmsCommandHandler) draft(ctx context.Context, cmd SendSmsCommand) (sms.Message, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return sms.Message{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return sms.Message{}, err
	}

	custom := ""
	if cmd.Template() == sms.TemplateCustom {
		custom = cmd.Text()
	}
	return h.dispatcher.compose(ctx, cmd.Template(), o, custom)
}

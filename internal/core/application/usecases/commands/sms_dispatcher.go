package commands

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

// smsDispatcher composes, sends and logs one message. The log row is written
// in its own transaction after the order change committed, so a failing
// dispatcher never rolls back an order change.
type smsDispatcher struct {
	uowFactory SmsUoWFactory
	notifier   ports.Notifier
	settings   ports.SettingsProvider
	composer   services.SmsComposer
}

func newSmsDispatcher(uowFactory SmsUoWFactory, notifier ports.Notifier, settings ports.SettingsProvider) smsDispatcher {
	return smsDispatcher{
		uowFactory: uowFactory,
		notifier:   notifier,
		settings:   settings,
		composer:   services.NewSmsComposer(),
	}
}

func (d smsDispatcher) compose(
	ctx context.Context,
	tpl sms.Template,
	o *order.Order,
	custom string,
) (sms.Message, error) {
	contact, err := d.settings.AdminContact(ctx)
	if err != nil {
		return sms.Message{}, err
	}
	return d.composer.Compose(tpl, o, contact, custom)
}

// send dispatches msg and appends the attempt. The returned notification is
// valid even when the error is an UpstreamError.
func (d smsDispatcher) send(ctx context.Context, msg sms.Message) (sms.Notification, error) {
	sendErr := d.notifier.Send(ctx, msg)
	n := sms.Attempt(msg, time.Now(), sendErr)

	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return n, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SmsLogRepository().Append(ctx, &n); err != nil {
		return n, err
	}
	if err := uow.Commit(ctx); err != nil {
		return n, err
	}

	if sendErr != nil {
		return n, errs.NewUpstreamError("sms dispatcher", sendErr)
	}
	return n, nil
}

// notify sends the template for a committed transition and folds the outcome
// into r. Failures land in r.SmsError; the transition itself stands.
func (d smsDispatcher) notify(ctx context.Context, r *TransitionResult, tpl sms.Template, o *order.Order) {
	msg, err := d.compose(ctx, tpl, o, "")
	if err != nil {
		r.SmsError = err
		return
	}
	n, err := d.send(ctx, msg)
	r.Notification = &n
	r.SmsError = err
}

package commands

import (
	"errors"
	"strings"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrSendSmsCommandIsNotConstructed = errors.New("SendSmsCommand must be created via NewSendSmsCommand constructor")

// SendSmsCommand is used both to draft and to send. With the custom template
// text is the message body; otherwise text may replace the composed message
// after the operator edited a draft.
type SendSmsCommand struct {
	orderID  int64
	actor    access.Actor
	template sms.Template
	text     string

	guard guard.ConstructorGuard
}

func NewSendSmsCommand(orderID int64, actor access.Actor, template, text string) (SendSmsCommand, error) {
	tpl, parseErr := sms.ParseTemplate(template)
	errList := []error{validateOrderRef(orderID, actor), parseErr}
	if tpl == sms.TemplateCustom && strings.TrimSpace(text) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("text"))
	}
	if err := errors.Join(errList...); err != nil {
		return SendSmsCommand{}, err
	}

	return SendSmsCommand{
		orderID:  orderID,
		actor:    actor,
		template: tpl,
		text:     strings.TrimSpace(text),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SendSmsCommand) Validate() error {
	return c.guard.Validate(ErrSendSmsCommandIsNotConstructed)
}

func (c SendSmsCommand) OrderID() int64         { return c.orderID }
func (c SendSmsCommand) Actor() access.Actor    { return c.actor }
func (c SendSmsCommand) Template() sms.Template { return c.template }
func (c SendSmsCommand) Text() string           { return c.text }

package services

import (
	"fmt"
	"strings"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SmsComposer renders order messages. The shop name in the bracket prefix
// is the admin contact name.
type SmsComposer struct {
	printer *message.Printer
}

func NewSmsComposer() SmsComposer {
	return SmsComposer{printer: message.NewPrinter(language.Korean)}
}

// Compose renders tpl for o. custom is only used by TemplateCustom.
func (c SmsComposer) Compose(
	tpl sms.Template,
	o *order.Order,
	contact settings.AdminContact,
	custom string,
) (sms.Message, error) {
	if err := o.Validate(); err != nil {
		return sms.Message{}, err
	}

	d := o.Details()
	var body string

	switch tpl {
	case sms.TemplateOrderReceived:
		body = c.printer.Sprintf("%s님, 주문이 접수되었습니다.\n주문번호: %s\n결제금액: %d원",
			d.CustomerName, o.Number(), o.TotalAmount())
		if contact.BankAccount != "" {
			body += "\n입금계좌: " + contact.BankAccount
		}
		if d.DepositorDiffers {
			body += "\n입금자명: " + d.DepositorName
		}
	case sms.TemplatePaymentConfirmed:
		body = fmt.Sprintf("%s님, 입금이 확인되었습니다.\n주문번호: %s\n정성껏 준비하겠습니다.",
			d.CustomerName, o.Number())
	case sms.TemplateShippingStarted:
		body = fmt.Sprintf("%s님, 주문하신 한과가 발송되었습니다.\n주문번호: %s",
			d.CustomerName, o.Number())
	case sms.TemplateDelivered:
		body = fmt.Sprintf("%s님, 배송이 완료되었습니다.\n주문번호: %s\n이용해 주셔서 감사합니다.",
			d.CustomerName, o.Number())
	case sms.TemplateCustom:
		body = strings.TrimSpace(custom)
		if body == "" {
			return sms.Message{}, errs.NewValueIsRequiredError("message")
		}
	default:
		return sms.Message{}, errs.NewValueIsInvalidErrorWithCause("template", fmt.Errorf("%s has no text", tpl))
	}

	if contact.Name != "" {
		body = "[" + contact.Name + "] " + body
	}
	if contact.Phone != "" && tpl != sms.TemplateCustom {
		body += "\n문의: " + contact.Phone
	}

	msg := sms.Message{OrderID: o.ID(), Phone: d.Phone.Formatted(), Text: body}
	if err := msg.Validate(); err != nil {
		return sms.Message{}, err
	}
	return msg, nil
}

// TemplateForStatus returns the template sent when an order enters st, if
// any.
func TemplateForStatus(st order.Status) (sms.Template, bool) {
	switch st {
	case order.StatusShipping, order.StatusSellerShipped:
		return sms.TemplateShippingStarted, true
	case order.StatusDelivered:
		return sms.TemplateDelivered, true
	default:
		return sms.UnknownTemplate, false
	}
}

// TemplateForPayment returns the template sent when payment enters ps, if
// any.
func TemplateForPayment(ps order.PaymentStatus) (sms.Template, bool) {
	if ps == order.PaymentConfirmed {
		return sms.TemplatePaymentConfirmed, true
	}
	return sms.UnknownTemplate, false
}

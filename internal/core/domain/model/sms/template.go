// Package sms holds the message templates offered to staff and the append
// only log of dispatch attempts.
package sms

import (
	"fmt"
	"strings"

	"snackshop/internal/pkg/errs"
)

// Template selects the wording of an order message.
type Template int

const (
	UnknownTemplate Template = iota
	TemplateOrderReceived
	TemplatePaymentConfirmed
	TemplateShippingStarted
	TemplateDelivered
	TemplateCustom
)

func getTemplateStrings() map[Template]string {
	return map[Template]string{
		TemplateOrderReceived:    "order_received",
		TemplatePaymentConfirmed: "payment_confirmed",
		TemplateShippingStarted:  "shipping_started",
		TemplateDelivered:        "delivered",
		TemplateCustom:           "custom",
	}
}

func ParseTemplate(s string) (Template, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, str := range getTemplateStrings() {
		if str == name {
			return t, nil
		}
	}
	return UnknownTemplate, errs.NewValueIsInvalidErrorWithCause("template", fmt.Errorf("%q is not a valid template", s))
}

func (t Template) String() string {
	if str, ok := getTemplateStrings()[t]; ok {
		return str
	}
	return "unknown"
}

package order

import (
	"fmt"
	"strings"

	"snackshop/internal/pkg/errs"
)

// PaymentStatus tracks the bank transfer of an order.
//
//	Pending ──> Confirmed ──> Refunded
//	   ^            │
//	   └────────────┘
//	 (staff correction)
//
// Refunded is terminal.
type PaymentStatus int

const (
	// UnknownPaymentStatus catches uninitialized values.
	UnknownPaymentStatus PaymentStatus = iota

	// PaymentPending is the initial state; no deposit was seen yet.
	PaymentPending

	// PaymentConfirmed means staff matched the deposit.
	PaymentConfirmed

	// PaymentRefunded means the money was returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentConfirmed: "confirmed",
		PaymentRefunded:  "refunded",
	}
}

// ParsePaymentStatus converts the stored or wire name of a payment state.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, str := range getPaymentStatusStrings() {
		if str == name {
			return st, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// ValidateTransition reports whether moving from p to next is allowed.
// Staying in the same state is always allowed.
//
// Allowed moves:
//   - Pending -> Confirmed
//   - Confirmed -> Refunded
//   - Confirmed -> Pending
func (p PaymentStatus) ValidateTransition(next PaymentStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if p == next {
		return nil
	}

	switch {
	case p == PaymentPending && next == PaymentConfirmed,
		p == PaymentConfirmed && next == PaymentRefunded,
		p == PaymentConfirmed && next == PaymentPending:
		return nil
	default:
		return errs.NewConflictError("payment", fmt.Sprintf("cannot move from %s to %s", p, next))
	}
}

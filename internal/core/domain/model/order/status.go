package order

import (
	"fmt"
	"strings"

	"snackshop/internal/pkg/errs"
)

// Status is the fulfillment stage of an order. Stages are ordered but staff
// may move an order to any stage, for example to undo a mistaken click.
//
//	Pending -> Preparing -> Scheduled -> Shipping -> SellerShipped -> Delivered
type Status int

const (
	// UnknownStatus catches uninitialized values.
	UnknownStatus Status = iota

	// StatusPending is the initial stage. Customers may still edit the order.
	StatusPending

	// StatusPreparing means the snacks are being made or packed.
	StatusPreparing

	// StatusScheduled means a shipping date was agreed.
	StatusScheduled

	// StatusShipping means the parcel was handed to the carrier.
	StatusShipping

	// StatusSellerShipped means the seller shipped directly.
	StatusSellerShipped

	// StatusDelivered is the terminal stage and may only be set by a manager.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:       "pending",
		StatusPreparing:     "preparing",
		StatusScheduled:     "scheduled",
		StatusShipping:      "shipping",
		StatusSellerShipped: "seller_shipped",
		StatusDelivered:     "delivered",
	}
}

// AllStatuses lists the valid stages in order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusPreparing,
		StatusScheduled,
		StatusShipping,
		StatusSellerShipped,
		StatusDelivered,
	}
}

// ParseStatus converts the stored or wire name of a stage.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, str := range getStatusStrings() {
		if str == name {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined stages.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

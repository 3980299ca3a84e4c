// Package pricing derives the shipping fee, total amount and cost of an
// order from its box quantities and the current price settings. All money is
// whole Korean won held in int64.
package pricing

import (
	"errors"
	"fmt"

	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/pkg/errs"
)

// Quantities are the three countable items of an order.
type Quantities struct {
	SmallBoxes int
	LargeBoxes int
	Wrappings  int
}

// Boxes is the quantity the shipping rule looks at. Wrapping is not a box.
func (q Quantities) Boxes() int {
	return q.SmallBoxes + q.LargeBoxes
}

// Validate rejects negative quantities.
func (q Quantities) Validate() error {
	var joined []error
	if q.SmallBoxes < 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("smallBoxQuantity", q.SmallBoxes, 0, "unbounded"))
	}
	if q.LargeBoxes < 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("largeBoxQuantity", q.LargeBoxes, 0, "unbounded"))
	}
	if q.Wrappings < 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("wrappingQuantity", q.Wrappings, 0, "unbounded"))
	}
	return errors.Join(joined...)
}

// ValidateForOrder additionally requires at least one box. Empty quantities
// are still priceable (the order form shows a zero quote) but never ordered.
func (q Quantities) ValidateForOrder() error {
	if err := q.Validate(); err != nil {
		return err
	}
	if q.Boxes() < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantities", errors.New("at least one small or large box is required"))
	}
	return nil
}

// Quote is the customer-facing price breakdown.
type Quote struct {
	Subtotal    int64
	ShippingFee int64
	Discount    int64
	Total       int64
}

// Calculate prices q under p. discount is a staff-applied reduction and may
// not exceed subtotal plus shipping.
func Calculate(q Quantities, p settings.Pricing, discount int64) (Quote, error) {
	if err := q.Validate(); err != nil {
		return Quote{}, err
	}
	if discount < 0 {
		return Quote{}, errs.NewValueIsOutOfRangeError("discountAmount", discount, 0, "gross amount")
	}

	subtotal := int64(q.SmallBoxes)*p.SmallBoxPrice +
		int64(q.LargeBoxes)*p.LargeBoxPrice +
		int64(q.Wrappings)*p.WrappingPrice
	fee := ShippingFee(q, p)

	gross := subtotal + fee
	if discount > gross {
		return Quote{}, errs.NewValueIsOutOfRangeError("discountAmount", discount, 0, gross)
	}

	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Discount:    discount,
		Total:       gross - discount,
	}, nil
}

// ShippingFee is zero for an empty cart and for carts at or above the free
// shipping threshold, otherwise the flat fee.
func ShippingFee(q Quantities, p settings.Pricing) int64 {
	boxes := q.Boxes()
	if boxes == 0 || boxes >= p.FreeShippingThreshold {
		return 0
	}
	return p.ShippingFee
}

// Verify recalculates and compares with a client-submitted total.
func Verify(q Quantities, p settings.Pricing, discount, submittedTotal int64) (Quote, error) {
	quote, err := Calculate(q, p, discount)
	if err != nil {
		return Quote{}, err
	}
	if quote.Total != submittedTotal {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("submitted %d, expected %d", submittedTotal, quote.Total))
	}
	return quote, nil
}

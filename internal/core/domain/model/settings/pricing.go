// Package settings holds the business configuration the shop staff edit:
// unit prices, unit costs, the shipping rule, and the admin contact used as
// the SMS sender identity.
package settings

import (
	"errors"
	"fmt"
	"strconv"

	"snackshop/internal/pkg/errs"
)

// Keys of the settings key/value table.
const (
	KeySmallBoxPrice         = "small_box_price"
	KeyLargeBoxPrice         = "large_box_price"
	KeyWrappingPrice         = "wrapping_price"
	KeyShippingFee           = "shipping_fee"
	KeyFreeShippingThreshold = "free_shipping_threshold"
	KeySmallBoxCost          = "small_box_cost"
	KeyLargeBoxCost          = "large_box_cost"
	KeyWrappingCost          = "wrapping_cost"
)

// Pricing is the set of unit prices, unit costs and the shipping rule in won.
type Pricing struct {
	SmallBoxPrice         int64
	LargeBoxPrice         int64
	WrappingPrice         int64
	ShippingFee           int64
	FreeShippingThreshold int
	SmallBoxCost          int64
	LargeBoxCost          int64
	WrappingCost          int64
}

// DefaultPricing is used for any key missing from storage.
func DefaultPricing() Pricing {
	return Pricing{
		SmallBoxPrice:         19000,
		LargeBoxPrice:         21000,
		WrappingPrice:         1000,
		ShippingFee:           4000,
		FreeShippingThreshold: 6,
	}
}

// Validate requires non-negative money and a threshold of at least one box.
func (p Pricing) Validate() error {
	var joined []error
	for key, v := range p.moneyFields() {
		if v < 0 {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%d is negative", v)))
		}
	}
	if p.FreeShippingThreshold < 1 {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			KeyFreeShippingThreshold, fmt.Errorf("%d is less than 1", p.FreeShippingThreshold)))
	}
	return errors.Join(joined...)
}

// PricingFromValues decodes the key/value rows. Unknown keys are ignored and
// missing keys keep their default.
func PricingFromValues(values map[string]string) (Pricing, error) {
	p := DefaultPricing()

	targets := map[string]*int64{
		KeySmallBoxPrice: &p.SmallBoxPrice,
		KeyLargeBoxPrice: &p.LargeBoxPrice,
		KeyWrappingPrice: &p.WrappingPrice,
		KeyShippingFee:   &p.ShippingFee,
		KeySmallBoxCost:  &p.SmallBoxCost,
		KeyLargeBoxCost:  &p.LargeBoxCost,
		KeyWrappingCost:  &p.WrappingCost,
	}
	for key, target := range targets {
		raw, ok := values[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		*target = v
	}

	if raw, ok := values[KeyFreeShippingThreshold]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(KeyFreeShippingThreshold, err)
		}
		p.FreeShippingThreshold = v
	}

	if err := p.Validate(); err != nil {
		return Pricing{}, err
	}
	return p, nil
}

// Values encodes p for the key/value table.
func (p Pricing) Values() map[string]string {
	values := make(map[string]string, 8)
	for key, v := range p.moneyFields() {
		values[key] = strconv.FormatInt(v, 10)
	}
	values[KeyFreeShippingThreshold] = strconv.Itoa(p.FreeShippingThreshold)
	return values
}

func (p Pricing) moneyFields() map[string]int64 {
	return map[string]int64{
		KeySmallBoxPrice: p.SmallBoxPrice,
		KeyLargeBoxPrice: p.LargeBoxPrice,
		KeyWrappingPrice: p.WrappingPrice,
		KeyShippingFee:   p.ShippingFee,
		KeySmallBoxCost:  p.SmallBoxCost,
		KeyLargeBoxCost:  p.LargeBoxCost,
		KeyWrappingCost:  p.WrappingCost,
	}
}

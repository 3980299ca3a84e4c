package kernel

import (
	"errors"
	"strings"

	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const postalCodeLength = 5

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a shipping destination. Line1 is required; the postal code is
// optional (customer imports often omit it) but, when present, must be the
// five-digit Korean zone number.
type Address struct {
	postalCode string
	line1      string
	line2      string
	guard      guard.ConstructorGuard
}

func NewAddress(postalCode, line1, line2 string) (Address, error) {
	postalCode = strings.TrimSpace(postalCode)
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)

	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if postalCode != "" {
		if len(postalCode) != postalCodeLength || strings.Trim(postalCode, "0123456789") != "" {
			return Address{}, errs.NewValueIsInvalidErrorWithCause("postal code", errors.New("must be 5 digits"))
		}
	}

	return Address{
		postalCode: postalCode,
		line1:      line1,
		line2:      line2,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Line1() string      { return a.line1 }
func (a Address) Line2() string      { return a.line2 }

// HasPostalCode reports whether a postal code was supplied.
func (a Address) HasPostalCode() bool {
	return a.postalCode != ""
}

// IsEqual compares postal code and first line; the detail line is free text
// and does not identify a destination.
func (a Address) IsEqual(other Address) bool {
	return a.postalCode == other.postalCode && a.line1 == other.line1
}

// String renders the address on one line.
func (a Address) String() string {
	parts := make([]string, 0, 3)
	if a.postalCode != "" {
		parts = append(parts, "("+a.postalCode+")")
	}
	parts = append(parts, a.line1)
	if a.line2 != "" {
		parts = append(parts, a.line2)
	}
	return strings.Join(parts, " ")
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

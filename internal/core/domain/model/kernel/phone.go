package kernel

import (
	"errors"
	"fmt"
	"strings"

	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const (
	phoneMinDigits = 9
	phoneMaxDigits = 11
)

// ErrPhoneIsNotConstructed is returned when a zero-value Phone is validated.
var ErrPhoneIsNotConstructed = errors.New("Phone must be created via NewPhone")

// Phone is a phone number reduced to its digits. Hyphens, spaces and dots
// are accepted on input and dropped, so "010-1234-5678" and "01012345678"
// are the same Phone. Customers are deduplicated by this value.
//
// Example:
//
//	p, err := kernel.NewPhone("010-1234-5678")
//	if err != nil {
//	    return err
//	}
//	p.String()    // "01012345678"
//	p.Formatted() // "010-1234-5678"
type Phone struct {
	digits string
	guard  guard.ConstructorGuard
}

// NewPhone normalizes raw and validates that it is a domestic number:
// 9 to 11 digits starting with 0.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '.':
		default:
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("unexpected character %q", r))
		}
	}

	digits := b.String()
	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", len(digits), phoneMinDigits, phoneMaxDigits)
	}
	if digits[0] != '0' {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone", errors.New("must start with 0"))
	}

	return Phone{digits: digits, guard: guard.NewConstructorGuard()}, nil
}

// String returns the digits only.
func (p Phone) String() string {
	return p.digits
}

// Formatted returns the number with hyphens in the usual Korean grouping.
func (p Phone) Formatted() string {
	d := p.digits
	switch {
	case len(d) == 11:
		return d[:3] + "-" + d[3:7] + "-" + d[7:]
	case len(d) == 10 && strings.HasPrefix(d, "02"):
		return d[:2] + "-" + d[2:6] + "-" + d[6:]
	case len(d) == 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case len(d) == 9:
		return d[:2] + "-" + d[2:5] + "-" + d[5:]
	default:
		return d
	}
}

// IsEqual compares two phones by digits.
func (p Phone) IsEqual(other Phone) bool {
	return p.digits == other.digits
}

// Validate reports whether p was built by NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

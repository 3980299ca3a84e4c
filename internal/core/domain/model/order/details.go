package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/pricing"
	"snackshop/internal/pkg/errs"
)

const (
	nameMaxLength            = 50
	specialRequestsMaxLength = 500
)

// Recipient is set when the parcel goes to someone other than the customer.
type Recipient struct {
	Name    string
	Phone   kernel.Phone
	Address kernel.Address
}

// Details is everything the customer fills in on the order form. It is
// replaced as a whole on every customer edit.
type Details struct {
	CustomerName    string
	Phone           kernel.Phone
	Address         kernel.Address
	SpecialRequests string

	Recipient *Recipient

	// DepositorName is the name on the bank transfer when it differs from
	// CustomerName.
	DepositorName    string
	DepositorDiffers bool

	Quantities pricing.Quantities
}

// Normalize trims free text fields.
func (d Details) Normalize() Details {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.SpecialRequests = strings.TrimSpace(d.SpecialRequests)
	d.DepositorName = strings.TrimSpace(d.DepositorName)
	if d.Recipient != nil {
		r := *d.Recipient
		r.Name = strings.TrimSpace(r.Name)
		d.Recipient = &r
	}
	if !d.DepositorDiffers {
		d.DepositorName = ""
	}
	return d
}

// Validate joins every field problem so the form can show them together.
func (d Details) Validate() error {
	var joined []error

	joined = append(joined, validateName("customerName", d.CustomerName))
	joined = append(joined, d.Phone.Validate(), d.Address.Validate())

	if n := utf8.RuneCountInString(d.SpecialRequests); n > specialRequestsMaxLength {
		joined = append(joined, errs.NewValueIsOutOfRangeError("specialRequests length", n, 0, specialRequestsMaxLength))
	}

	if d.Recipient != nil {
		joined = append(joined,
			validateName("recipientName", d.Recipient.Name),
			d.Recipient.Phone.Validate(),
			d.Recipient.Address.Validate(),
		)
	}

	if d.DepositorDiffers {
		joined = append(joined, validateName("depositorName", d.DepositorName))
	}

	joined = append(joined, d.Quantities.ValidateForOrder())

	return errors.Join(joined...)
}

func validateName(field, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(field)
	}
	if n := utf8.RuneCountInString(v); n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError(field+" length", n, 1, nameMaxLength)
	}
	return nil
}

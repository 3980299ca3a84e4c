package commands

import (
	"errors"
	"strings"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/pricing"
)

// OrderDetailsInput is the raw order form. It is shared by placing and
// editing an order.
type OrderDetailsInput struct {
	CustomerName    string
	Phone           string
	PostalCode      string
	Address1        string
	Address2        string
	SpecialRequests string

	RecipientName       string
	RecipientPhone      string
	RecipientPostalCode string
	RecipientAddress1   string
	RecipientAddress2   string

	DepositorName    string
	DepositorDiffers bool

	SmallBoxQuantity int
	LargeBoxQuantity int
	WrappingQuantity int
}

func (in OrderDetailsInput) hasRecipient() bool {
	return strings.TrimSpace(in.RecipientName+in.RecipientPhone+in.RecipientPostalCode+
		in.RecipientAddress1+in.RecipientAddress2) != ""
}

// toDetails parses the form into domain values, joining every field error.
func (in OrderDetailsInput) toDetails() (order.Details, error) {
	phone, phoneErr := kernel.NewPhone(in.Phone)
	addr, addrErr := kernel.NewAddress(in.PostalCode, in.Address1, in.Address2)

	d := order.Details{
		CustomerName:     in.CustomerName,
		Phone:            phone,
		Address:          addr,
		SpecialRequests:  in.SpecialRequests,
		DepositorName:    in.DepositorName,
		DepositorDiffers: in.DepositorDiffers,
		Quantities: pricing.Quantities{
			SmallBoxes: in.SmallBoxQuantity,
			LargeBoxes: in.LargeBoxQuantity,
			Wrappings:  in.WrappingQuantity,
		},
	}

	var recipientErr error
	if in.hasRecipient() {
		rPhone, rPhoneErr := kernel.NewPhone(in.RecipientPhone)
		rAddr, rAddrErr := kernel.NewAddress(in.RecipientPostalCode, in.RecipientAddress1, in.RecipientAddress2)
		recipientErr = errors.Join(rPhoneErr, rAddrErr)
		d.Recipient = &order.Recipient{Name: in.RecipientName, Phone: rPhone, Address: rAddr}
	}

	if err := errors.Join(phoneErr, addrErr, recipientErr); err != nil {
		return order.Details{}, err
	}

	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return order.Details{}, err
	}
	return d, nil
}

package commands

import (
	"errors"
	"strings"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
)

// CustomerInput is the staff customer form and one spreadsheet import row.
// Only name and phone are required.
type CustomerInput struct {
	Name       string
	Phone      string
	PostalCode string
	Address1   string
	Address2   string
	Notes      string
}

func (in CustomerInput) toProfile() (customer.Profile, error) {
	phone, phoneErr := kernel.NewPhone(in.Phone)

	var (
		addr    *kernel.Address
		addrErr error
	)
	if strings.TrimSpace(in.PostalCode+in.Address1+in.Address2) != "" {
		a, err := kernel.NewAddress(in.PostalCode, in.Address1, in.Address2)
		addr, addrErr = &a, err
	}

	if err := errors.Join(phoneErr, addrErr); err != nil {
		return customer.Profile{}, err
	}
	return customer.Profile{Name: in.Name, Phone: phone, Address: addr, Notes: in.Notes}, nil
}

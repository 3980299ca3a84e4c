package queries

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// AddressView is one remembered delivery address.
type AddressView struct {
	PostalCode string    `json:"postalCode,omitempty"`
	Address1   string    `json:"address1"`
	Address2   string    `json:"address2,omitempty"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// CustomerAddressesQueryHandler returns the address book of the customer
// with a phone number, most recently used first. An unknown phone yields an
// empty list.
type CustomerAddressesQueryHandler struct {
	db *gorm.DB
}

func NewCustomerAddressesQueryHandler(db *gorm.DB) CustomerAddressesQueryHandler {
	return CustomerAddressesQueryHandler{db: db}
}

func (h CustomerAddressesQueryHandler) Handle(
	ctx context.Context,
	actor access.Actor,
	rawPhone string,
) ([]AddressView, error) {
	if _, err := access.RequireStaff(actor); err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(rawPhone)
	if err != nil {
		return nil, err
	}

	addresses := make([]AddressView, 0)
	err = h.db.WithContext(ctx).Raw(`
		SELECT a.postal_code, a.address1, a.address2, a.last_used_at
		FROM customer_addresses a
		JOIN customers c ON c.id = a.customer_id
		WHERE c.phone = ?
		ORDER BY a.last_used_at DESC, a.id DESC
	`, phone.String()).Scan(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

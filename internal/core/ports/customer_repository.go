package ports

import (
	"context"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
)

// CustomerRepository persists Customer aggregates and their address book.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// FindByPhone returns the customer with the given phone including trashed
	// ones, or an ObjectNotFoundError.
	FindByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)

	// Delete removes a trashed customer and its addresses permanently.
	Delete(ctx context.Context, id int64) error

	// RememberAddress inserts the entry or refreshes its last used time.
	RememberAddress(ctx context.Context, entry customer.AddressEntry) error
}

package customer

import (
	"time"

	"snackshop/internal/core/domain/model/kernel"
)

// AddressEntry is one remembered shipping address of a customer. Entries are
// unique per customer, postal code and first address line.
type AddressEntry struct {
	CustomerID int64
	Address    kernel.Address
	LastUsedAt time.Time
}

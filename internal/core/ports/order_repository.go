// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and outbound services.
package ports

import (
	"context"

	"snackshop/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
//
// Updates are compare-and-swap on the version column: the row is written only
// if its stored version still equals aggregate.Version(), and the version is
// then incremented on both the row and the aggregate. A stale version is a
// ConflictError.
type OrderRepository interface {
	// Add inserts a new order and assigns its id and first version.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes a staff change.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfCustomerEditable writes a customer change. Besides the version
	// it requires the stored row to be pending on both machines and not in
	// trash, so a concurrent staff transition wins.
	UpdateIfCustomerEditable(ctx context.Context, aggregate *order.Order) error

	// Get returns an order by id, trashed or not.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes a trashed order permanently. Rows not in trash are left
	// alone and reported as conflicts.
	Delete(ctx context.Context, id int64) error
}

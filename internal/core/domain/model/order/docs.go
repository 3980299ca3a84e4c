// Package order provides the Order aggregate of the snack shop and the two
// state machines that drive it.
//
// The package includes:
//   - Order: the aggregate root holding the customer details, pricing, cost
//     snapshot, fulfillment dates and soft-delete state of one purchase
//   - Status: the fulfillment stage (pending through delivered)
//   - PaymentStatus: the payment stage (pending, confirmed, refunded)
//   - Number: the human readable order number printed on SMS messages
//
// Key business rules:
//   - An order has at least one small or large box
//   - Totals are always recomputed from quantities and settings; a submitted
//     total that disagrees is rejected
//   - Customers may only change an order while both machines are pending
//   - Only roles with CanSetDelivered may move an order to delivered
//   - Fulfillment dates are tri-state changes: keep, clear or set
package order

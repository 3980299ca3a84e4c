// Package services provides domain services that work across aggregates of
// the snack shop.
//
// The package includes:
//   - CustomerLedger: folds a placed or edited order into the customer record
//     keyed by the order phone
//   - SmsComposer: renders the staff SMS templates for an order
//
// Both services are stateless; persistence is the caller's concern.
package services

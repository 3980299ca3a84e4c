package services

import (
	"time"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/order"
)

// CustomerLedger keeps customer statistics in step with orders.
type CustomerLedger struct{}

func NewCustomerLedger() CustomerLedger {
	return CustomerLedger{}
}

// RecordPlacement folds a new order into its customer. existing is the
// customer found by the order phone, or nil. A trashed customer who orders
// again is restored. The returned entry is the address to remember.
func (CustomerLedger) RecordPlacement(
	existing *customer.Customer,
	o *order.Order,
) (*customer.Customer, customer.AddressEntry, error) {
	if err := o.Validate(); err != nil {
		return nil, customer.AddressEntry{}, err
	}

	d := o.Details()
	c := existing
	if c == nil {
		var err error
		c, err = customer.NewCustomer(customer.Profile{
			Name:  d.CustomerName,
			Phone: d.Phone,
		}, o.CreatedAt())
		if err != nil {
			return nil, customer.AddressEntry{}, err
		}
	}
	if c.IsDeleted() {
		if err := c.RestoreFromTrash(); err != nil {
			return nil, customer.AddressEntry{}, err
		}
	}

	c.RecordOrder(d.CustomerName, d.Address, o.TotalAmount(), o.CreatedAt())

	entry := customer.AddressEntry{
		CustomerID: c.ID(),
		Address:    d.Address,
		LastUsedAt: o.CreatedAt(),
	}
	return c, entry, nil
}

// RecordTotalChange applies the difference between an order's old and new
// totals to its customer.
func (CustomerLedger) RecordTotalChange(c *customer.Customer, oldTotal, newTotal int64, now time.Time) {
	if c == nil {
		return
	}
	c.AdjustSpent(newTotal-oldTotal, now)
}

// RecordRemoval takes an order that was cancelled or moved to the trash out
// of its customer's statistics.
func (CustomerLedger) RecordRemoval(c *customer.Customer, amount int64, now time.Time) {
	if c == nil {
		return
	}
	c.RemoveOrder(amount, now)
}

// RecordRestore counts an order restored from the trash again.
func (CustomerLedger) RecordRestore(c *customer.Customer, amount int64, now time.Time) {
	if c == nil {
		return
	}
	c.ReinstateOrder(amount, now)
}

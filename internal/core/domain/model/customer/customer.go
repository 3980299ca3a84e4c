// Package customer contains the Customer aggregate: one record per phone
// number with the running order statistics and an address book.
package customer

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/trash"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const (
	nameMaxLength  = 50
	notesMaxLength = 1000
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is keyed by phone. Orders placed with the same phone accumulate
// into the same record.
type Customer struct {
	id      int64
	name    string
	phone   kernel.Phone
	address *kernel.Address
	notes   string

	orderCount    int
	totalSpent    int64
	lastOrderDate *time.Time

	createdAt time.Time
	updatedAt time.Time

	trash.State

	guard guard.ConstructorGuard
}

// Profile is the staff-editable part of a customer.
type Profile struct {
	Name    string
	Phone   kernel.Phone
	Address *kernel.Address
	Notes   string
}

func (p Profile) normalize() Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}

func (p Profile) validate() error {
	var joined []error
	switch n := utf8.RuneCountInString(p.Name); {
	case n == 0:
		joined = append(joined, errs.NewValueIsRequiredError("name"))
	case n > nameMaxLength:
		joined = append(joined, errs.NewValueIsOutOfRangeError("name length", n, 1, nameMaxLength))
	}
	joined = append(joined, p.Phone.Validate())
	if p.Address != nil {
		joined = append(joined, p.Address.Validate())
	}
	if n := utf8.RuneCountInString(p.Notes); n > notesMaxLength {
		joined = append(joined, errs.NewValueIsOutOfRangeError("notes length", n, 0, notesMaxLength))
	}
	return errors.Join(joined...)
}

// NewCustomer creates a customer without any orders.
func NewCustomer(p Profile, now time.Time) (*Customer, error) {
	p = p.normalize()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Customer{
		name:      p.Name,
		phone:     p.Phone,
		address:   p.Address,
		notes:     p.Notes,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the flat persisted form of a Customer.
type Snapshot struct {
	ID            int64
	Name          string
	Phone         kernel.Phone
	Address       *kernel.Address
	Notes         string
	OrderCount    int
	TotalSpent    int64
	LastOrderDate *time.Time
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func RestoreCustomer(s Snapshot) *Customer {
	return &Customer{
		id:            s.ID,
		name:          s.Name,
		phone:         s.Phone,
		address:       s.Address,
		notes:         s.Notes,
		orderCount:    s.OrderCount,
		totalSpent:    s.TotalSpent,
		lastOrderDate: s.LastOrderDate,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		State:         trash.RestoreState(s.IsDeleted, s.DeletedAt),
		guard:         guard.NewConstructorGuard(),
	}
}

func (c *Customer) Snapshot() Snapshot {
	return Snapshot{
		ID:            c.id,
		Name:          c.name,
		Phone:         c.phone,
		Address:       c.address,
		Notes:         c.notes,
		OrderCount:    c.orderCount,
		TotalSpent:    c.totalSpent,
		LastOrderDate: c.lastOrderDate,
		IsDeleted:     c.IsDeleted(),
		DeletedAt:     c.DeletedAt(),
		CreatedAt:     c.createdAt,
		UpdatedAt:     c.updatedAt,
	}
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() int64                 { return c.id }
func (c *Customer) Name() string              { return c.name }
func (c *Customer) Phone() kernel.Phone       { return c.phone }
func (c *Customer) Address() *kernel.Address  { return c.address }
func (c *Customer) Notes() string             { return c.notes }
func (c *Customer) OrderCount() int           { return c.orderCount }
func (c *Customer) TotalSpent() int64         { return c.totalSpent }
func (c *Customer) LastOrderDate() *time.Time { return c.lastOrderDate }
func (c *Customer) CreatedAt() time.Time      { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time      { return c.updatedAt }

// AssignID is called once by the repository after insert.
func (c *Customer) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}

// UpdateProfile replaces the staff-editable fields.
func (c *Customer) UpdateProfile(p Profile, now time.Time) error {
	if c.IsDeleted() {
		return errs.NewConflictError("customer", "is in trash")
	}
	p = p.normalize()
	if err := p.validate(); err != nil {
		return err
	}
	c.name = p.Name
	c.phone = p.Phone
	c.address = p.Address
	c.notes = p.Notes
	c.updatedAt = now
	return nil
}

// RecordOrder adds a newly placed order to the statistics. The latest name
// and address given on an order win.
func (c *Customer) RecordOrder(name string, address kernel.Address, amount int64, placedAt time.Time) {
	if name = strings.TrimSpace(name); name != "" {
		c.name = name
	}
	c.address = &address
	c.orderCount++
	c.totalSpent += amount
	if c.lastOrderDate == nil || placedAt.After(*c.lastOrderDate) {
		c.lastOrderDate = &placedAt
	}
	c.updatedAt = placedAt
}

// AdjustSpent applies the difference when an order total changes after
// placement. The running total never drops below zero.
func (c *Customer) AdjustSpent(delta int64, now time.Time) {
	if delta == 0 {
		return
	}
	c.totalSpent += delta
	if c.totalSpent < 0 {
		c.totalSpent = 0
	}
	c.updatedAt = now
}

// RemoveOrder takes a cancelled or trashed order out of the statistics.
// Neither counter drops below zero.
func (c *Customer) RemoveOrder(amount int64, now time.Time) {
	if c.orderCount > 0 {
		c.orderCount--
	}
	c.totalSpent -= amount
	if c.totalSpent < 0 {
		c.totalSpent = 0
	}
	c.updatedAt = now
}

// ReinstateOrder counts a restored order again.
func (c *Customer) ReinstateOrder(amount int64, now time.Time) {
	c.orderCount++
	c.totalSpent += amount
	c.updatedAt = now
}

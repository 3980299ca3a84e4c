package queries

import (
	"strings"
	"time"

	"snackshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderFilter narrows staff order listings and exports. Zero values match
// everything except that trashed orders are only returned with Trashed set.
type OrderFilter struct {
	Status        *order.Status
	PaymentStatus *order.PaymentStatus

	// Search matches the customer name, phone digits or order number.
	Search string

	// Trashed selects the trash view instead of the active list.
	Trashed bool

	// CreatedFrom and CreatedTo bound the creation time, inclusive and
	// exclusive respectively.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// NewOrderFilter parses the textual status filters. Empty strings mean
// "any".
func NewOrderFilter(status, paymentStatus, search string, trashed bool, from, to *time.Time) (OrderFilter, error) {
	f := OrderFilter{Search: strings.TrimSpace(search), Trashed: trashed, CreatedFrom: from, CreatedTo: to}
	if status != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return OrderFilter{}, err
		}
		f.Status = &s
	}
	if paymentStatus != "" {
		p, err := order.ParsePaymentStatus(paymentStatus)
		if err != nil {
			return OrderFilter{}, err
		}
		f.PaymentStatus = &p
	}
	return f, nil
}

func (f OrderFilter) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("is_deleted = ?", f.Trashed)
	if f.Status != nil {
		db = db.Where("status = ?", f.Status.String())
	}
	if f.PaymentStatus != nil {
		db = db.Where("payment_status = ?", f.PaymentStatus.String())
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		digits := onlyDigits(f.Search)
		if digits != "" {
			db = db.Where("customer_name ILIKE ? OR order_number ILIKE ? OR phone LIKE ?", like, like, "%"+digits+"%")
		} else {
			db = db.Where("customer_name ILIKE ? OR order_number ILIKE ?", like, like)
		}
	}
	if f.CreatedFrom != nil {
		db = db.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		db = db.Where("created_at < ?", *f.CreatedTo)
	}
	return db
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

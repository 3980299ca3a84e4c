package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery pages through customers, most recent buyers first.
type ListCustomersQuery struct {
	actor   access.Actor
	search  string
	trashed bool
	page    Page

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(actor access.Actor, search string, trashed bool, page Page) (ListCustomersQuery, error) {
	if actor == nil {
		return ListCustomersQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if page.Size == 0 {
		page = Page{Number: 1, Size: DefaultPageSize}
	}
	return ListCustomersQuery{
		actor:   actor,
		search:  strings.TrimSpace(search),
		trashed: trashed,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type CustomerView struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	PostalCode    string     `json:"postalCode,omitempty"`
	Address1      string     `json:"address1,omitempty"`
	Address2      string     `json:"address2,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	OrderCount    int        `json:"orderCount"`
	TotalSpent    int64      `json:"totalSpent"`
	LastOrderDate *time.Time `json:"lastOrderDate"`
	IsDeleted     bool       `json:"isDeleted"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ListCustomersQueryResponse struct {
	Items    []CustomerView `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

const customerColumns = `id, name, phone, postal_code, address1, address2, notes,
	order_count, total_spent, last_order_date, is_deleted, deleted_at, created_at, updated_at`

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}
	if _, err := access.RequireStaff(query.actor); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	scope := func() *gorm.DB {
		db := h.db.WithContext(ctx).Table("customers").Where("is_deleted = ?", query.trashed)
		if query.search != "" {
			like := "%" + query.search + "%"
			if digits := onlyDigits(query.search); digits != "" {
				return db.Where("name ILIKE ? OR phone LIKE ?", like, "%"+digits+"%")
			}
			return db.Where("name ILIKE ?", like)
		}
		return db
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	var items []CustomerView
	err := scope().
		Select(customerColumns).
		Order("last_order_date DESC NULLS LAST, id DESC").
		Limit(query.page.Size).
		Offset(query.page.Offset()).
		Scan(&items).Error
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}

	for i := range items {
		items[i].Phone = formatPhone(items[i].Phone)
	}
	if items == nil {
		items = make([]CustomerView, 0)
	}

	return ListCustomersQueryResponse{
		Items:    items,
		Total:    total,
		Page:     query.page.Number,
		PageSize: query.page.Size,
	}, nil
}

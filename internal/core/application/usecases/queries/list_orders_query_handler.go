package queries

import (
	"context"

	"snackshop/internal/core/domain/model/access"

	"gorm.io/gorm"
)

// orderColumns is the select list shared by every order listing.
const orderColumns = `id, order_number, customer_name, phone, postal_code, address1, address2,
	special_requests, recipient_name, recipient_phone, recipient_postal_code,
	recipient_address1, recipient_address2, depositor_name, depositor_differs,
	small_box_quantity, large_box_quantity, wrapping_quantity, password_hash,
	shipping_fee, total_amount, actual_paid_amount, discount_amount, discount_reason,
	small_box_cost, large_box_cost, wrapping_cost, total_cost, net_profit,
	status, payment_status, payment_confirmed_at, scheduled_date, seller_shipped,
	seller_shipped_date, delivered_date, is_deleted, deleted_at, created_at, updated_at`

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if _, err := access.RequireStaff(query.actor); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var total int64
	if err := query.filter.apply(h.db.WithContext(ctx).Table("orders")).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var rows []orderRow
	err := query.filter.apply(h.db.WithContext(ctx).Table("orders")).
		Select(orderColumns).
		Order("created_at DESC, id DESC").
		Limit(query.page.Size).
		Offset(query.page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view(true))
	}

	return ListOrdersQueryResponse{
		Items:    items,
		Total:    total,
		Page:     query.page.Number,
		PageSize: query.page.Size,
	}, nil
}

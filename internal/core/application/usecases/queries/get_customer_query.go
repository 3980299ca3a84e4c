package queries

import (
	"context"
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryResponse is a customer with their most recent orders.
type GetCustomerQueryResponse struct {
	CustomerView
	RecentOrders []OrderView `json:"recentOrders"`
}

const recentOrdersLimit = 20

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	actor access.Actor,
	customerID int64,
) (GetCustomerQueryResponse, error) {
	if _, err := access.RequireStaff(actor); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var c CustomerView
	err := h.db.WithContext(ctx).Table("customers").
		Select(customerColumns).
		Where("id = ?", customerID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetCustomerQueryResponse{}, errs.NewObjectNotFoundError("customer", customerID)
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var rows []orderRow
	err = h.db.WithContext(ctx).Table("orders").
		Select(orderColumns).
		Where("phone = ? AND is_deleted = ?", c.Phone, false).
		Order("created_at DESC, id DESC").
		Limit(recentOrdersLimit).
		Scan(&rows).Error
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	orders := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.view(true))
	}
	c.Phone = formatPhone(c.Phone)

	return GetCustomerQueryResponse{CustomerView: c, RecentOrders: orders}, nil
}

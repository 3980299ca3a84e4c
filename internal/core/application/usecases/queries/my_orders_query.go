package queries

import (
	"context"

	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// MyOrdersQueryHandler lists the active orders placed by a logged-in account.
type MyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewMyOrdersQueryHandler(db *gorm.DB) MyOrdersQueryHandler {
	return MyOrdersQueryHandler{db: db}
}

func (h MyOrdersQueryHandler) Handle(ctx context.Context, userID int64) ([]OrderView, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Table("orders").
		Select(orderColumns).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view(false))
	}
	return items, nil
}

package queries

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/access"

	"gorm.io/gorm"
)

type SmsLogView struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
}

// ListSmsLogsQueryHandler returns the dispatch history of one order, newest
// first.
type ListSmsLogsQueryHandler struct {
	db *gorm.DB
}

func NewListSmsLogsQueryHandler(db *gorm.DB) ListSmsLogsQueryHandler {
	return ListSmsLogsQueryHandler{db: db}
}

func (h ListSmsLogsQueryHandler) Handle(ctx context.Context, actor access.Actor, orderID int64) ([]SmsLogView, error) {
	if _, err := access.RequireStaff(actor); err != nil {
		return nil, err
	}

	logs := make([]SmsLogView, 0)
	err := h.db.WithContext(ctx).Table("sms_notifications").
		Select("id, order_id, phone, message, sent_at, succeeded, error").
		Where("order_id = ?", orderID).
		Order("sent_at DESC, id DESC").
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

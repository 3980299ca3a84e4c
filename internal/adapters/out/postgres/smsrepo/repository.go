// Package smsrepo appends SMS dispatch attempts to sms_notifications.
package smsrepo

import (
	"context"
	"time"

	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
)

type NotificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	Phone     string    `gorm:"size:20;not null"`
	Message   string    `gorm:"type:text;not null"`
	SentAt    time.Time `gorm:"not null;index"`
	Succeeded bool      `gorm:"not null"`
	Error     string    `gorm:"type:text"`
}

func (NotificationDTO) TableName() string {
	return "sms_notifications"
}

// GormSmsLogRepository implements ports.SmsLogRepository using GORM.
type GormSmsLogRepository struct {
	db *gorm.DB
}

func NewGormSmsLogRepository(db *gorm.DB) *GormSmsLogRepository {
	return &GormSmsLogRepository{db: db}
}

func (r *GormSmsLogRepository) Append(ctx context.Context, n *sms.Notification) error {
	if n == nil {
		return errs.NewValueIsRequiredError("notification")
	}
	if n.OrderID <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	dto := NotificationDTO{
		OrderID:   n.OrderID,
		Phone:     n.Phone,
		Message:   n.Message,
		SentAt:    n.SentAt,
		Succeeded: n.Succeeded,
		Error:     n.Error,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	n.ID = dto.ID
	return nil
}

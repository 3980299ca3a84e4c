package orderrepo

import (
	"context"
	"errors"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and assigns its id and first version.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.ID, dto.Version)
	return nil
}

// Update writes every column if the stored version still matches.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.compareAndSwap(ctx, aggregate, r.db.WithContext(ctx))
}

// UpdateIfCustomerEditable is Update restricted to rows that are still
// pending on both machines and not in trash.
func (r *GormOrderRepository) UpdateIfCustomerEditable(ctx context.Context, aggregate *order.Order) error {
	scope := r.db.WithContext(ctx).Where(
		"status = ? AND payment_status = ? AND is_deleted = ?",
		order.StatusPending.String(), order.PaymentPending.String(), false,
	)
	return r.compareAndSwap(ctx, aggregate, scope)
}

func (r *GormOrderRepository) compareAndSwap(ctx context.Context, aggregate *order.Order, scope *gorm.DB) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := scope.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "order_number", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, dto.ID)
	}

	aggregate.MarkPersisted(dto.ID, dto.Version)
	return nil
}

// Get returns the order with id, trashed or not.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete purges a trashed order together with its SMS log.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	result := db.Where("id = ? AND is_deleted = ?", id, true).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := r.missingOrStale(ctx, id); errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		return errs.NewConflictError("order", "must be moved to trash before permanent deletion")
	}

	return db.Exec("DELETE FROM sms_notifications WHERE order_id = ?", id).Error
}

// missingOrStale tells a vanished row from a lost compare-and-swap.
func (r *GormOrderRepository) missingOrStale(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return errs.NewConflictError("order", "was changed by someone else or is no longer editable")
}

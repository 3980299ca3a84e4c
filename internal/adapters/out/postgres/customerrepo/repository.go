package customerrepo

import (
	"context"
	"errors"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("customer", "with this phone already exists", err)
		}
		return err
	}

	aggregate.AssignID(dto.ID)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("customer", "with this phone already exists", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByPhone includes trashed customers.
func (r *GormCustomerRepository) FindByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete purges a trashed customer and its address book.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	result := db.Where("id = ? AND is_deleted = ?", id, true).Delete(&CustomerDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&CustomerDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("customer", id)
		}
		return errs.NewConflictError("customer", "must be moved to trash before permanent deletion")
	}

	return db.Where("customer_id = ?", id).Delete(&AddressDTO{}).Error
}

// RememberAddress upserts on (customer, postal code, first line).
func (r *GormCustomerRepository) RememberAddress(ctx context.Context, entry customer.AddressEntry) error {
	if entry.CustomerID <= 0 {
		return errs.NewValueIsRequiredError("customer id")
	}
	if err := entry.Address.Validate(); err != nil {
		return err
	}

	dto := AddressDTO{
		CustomerID: entry.CustomerID,
		PostalCode: entry.Address.PostalCode(),
		Address1:   entry.Address.Line1(),
		Address2:   entry.Address.Line2(),
		LastUsedAt: entry.LastUsedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "postal_code"}, {Name: "address1"}},
		DoUpdates: clause.AssignmentColumns([]string{"address2", "last_used_at"}),
	}).Create(&dto).Error
}

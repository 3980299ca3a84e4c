package settingsrepo

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// LoadPricing falls back to the defaults for missing keys.
func (r *GormSettingsRepository) LoadPricing(ctx context.Context) (settings.Pricing, error) {
	var rows []SettingDTO
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return settings.Pricing{}, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return settings.PricingFromValues(values)
}

func (r *GormSettingsRepository) SavePricing(ctx context.Context, p settings.Pricing) error {
	if err := p.Validate(); err != nil {
		return err
	}

	now := time.Now()
	rows := make([]SettingDTO, 0, 8)
	for key, value := range p.Values() {
		rows = append(rows, SettingDTO{Key: key, Value: value, UpdatedAt: now})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}

// LoadAdminContact returns an empty contact until one has been saved.
func (r *GormSettingsRepository) LoadAdminContact(ctx context.Context) (settings.AdminContact, error) {
	var dto AdminContactDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", adminContactRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings.AdminContact{}, nil
	}
	if err != nil {
		return settings.AdminContact{}, err
	}

	return settings.AdminContact{
		Name:        dto.Name,
		Phone:       dto.Phone,
		Email:       dto.Email,
		BankAccount: dto.BankAccount,
	}, nil
}

func (r *GormSettingsRepository) SaveAdminContact(ctx context.Context, c settings.AdminContact) error {
	dto := AdminContactDTO{
		ID:          adminContactRowID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		BankAccount: c.BankAccount,
		UpdatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

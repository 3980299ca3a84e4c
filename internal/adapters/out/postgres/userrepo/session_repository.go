package userrepo

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id)
		}
		return nil, err
	}

	return sessionToDomain(dto), nil
}

// Touch only writes last_seen_at.
func (r *GormSessionRepository) Touch(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
		Where("id = ?", s.ID()).
		Update("last_seen_at", s.LastSeenAt())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", s.ID())
	}
	return nil
}

func (r *GormSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", id)
	}
	return nil
}

func (r *GormSessionRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&SessionDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&SessionDTO{})
	return result.RowsAffected, result.Error
}

package queries

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserView struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type SessionView struct {
	ID         uuid.UUID `json:"id"`
	UserID     int64     `json:"userId"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
}

const userColumns = "id, username, name, phone, role, is_active, last_login_at, created_at"

// AccountQueryHandler serves the account and session administration reads.
type AccountQueryHandler struct {
	db *gorm.DB
}

func NewAccountQueryHandler(db *gorm.DB) AccountQueryHandler {
	return AccountQueryHandler{db: db}
}

// Me returns the caller's own account.
func (h AccountQueryHandler) Me(ctx context.Context, userID int64) (UserView, error) {
	var u UserView
	err := h.db.WithContext(ctx).Table("users").Select(userColumns).Where("id = ?", userID).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserView{}, errs.NewObjectNotFoundError("user", userID)
	}
	return u, err
}

// ListUsers is admin only.
func (h AccountQueryHandler) ListUsers(ctx context.Context, actor access.Actor) ([]UserView, error) {
	if _, err := access.RequireCapability(actor, "list users", user.Role.CanManageUsers); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)
	err := h.db.WithContext(ctx).Table("users").Select(userColumns).Order("id").Scan(&users).Error
	return users, err
}

// ListSessions is admin only. Expired sessions that the purge job has not
// removed yet are left out.
func (h AccountQueryHandler) ListSessions(ctx context.Context, actor access.Actor, now time.Time) ([]SessionView, error) {
	if _, err := access.RequireCapability(actor, "list sessions", user.Role.CanManageUsers); err != nil {
		return nil, err
	}

	sessions := make([]SessionView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT s.id, s.user_id, u.username, s.created_at, s.expires_at, s.last_seen_at, s.ip, s.user_agent
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.expires_at > ?
		ORDER BY s.last_seen_at DESC
	`, now).Scan(&sessions).Error
	return sessions, err
}

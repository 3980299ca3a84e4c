// Package userrepo stores accounts in the users table and login sessions in
// the sessions table.
package userrepo

import (
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	Name         string `gorm:"size:50;not null"`
	Phone        string `gorm:"size:20"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:'user'"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

type SessionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     int64     `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	LastSeenAt time.Time `gorm:"not null"`
	IP         string    `gorm:"size:64"`
	UserAgent  string    `gorm:"size:300"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

func userFromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash().String(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(
		dto.ID,
		dto.Username,
		dto.Name,
		dto.Phone,
		kernel.RestorePasswordHash(dto.PasswordHash),
		role,
		dto.IsActive,
		dto.LastLoginAt,
		dto.CreatedAt,
	)
}

func sessionFromDomain(s *session.Session) SessionDTO {
	return SessionDTO{
		ID:         s.ID(),
		UserID:     s.UserID(),
		CreatedAt:  s.CreatedAt(),
		ExpiresAt:  s.ExpiresAt(),
		LastSeenAt: s.LastSeenAt(),
		IP:         s.IP(),
		UserAgent:  s.UserAgent(),
	}
}

func sessionToDomain(dto SessionDTO) *session.Session {
	return session.RestoreSession(
		dto.ID,
		dto.UserID,
		dto.CreatedAt,
		dto.ExpiresAt,
		dto.LastSeenAt,
		dto.IP,
		dto.UserAgent,
	)
}

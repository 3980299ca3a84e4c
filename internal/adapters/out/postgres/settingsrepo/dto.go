// Package settingsrepo stores pricing in the settings key/value table and the
// admin contact in the single-row admin_settings table.
package settingsrepo

import "time"

type SettingDTO struct {
	Key       string    `gorm:"primaryKey;size:50"`
	Value     string    `gorm:"size:200;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

// adminContactRowID is the id of the only admin_settings row.
const adminContactRowID = 1

type AdminContactDTO struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"size:50"`
	Phone       string `gorm:"size:20"`
	Email       string `gorm:"size:100"`
	BankAccount string `gorm:"size:200"`
	UpdatedAt   time.Time
}

func (AdminContactDTO) TableName() string {
	return "admin_settings"
}

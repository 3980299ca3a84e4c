package postgres

import (
	"snackshop/internal/adapters/out/postgres/customerrepo"
	"snackshop/internal/adapters/out/postgres/orderrepo"
	"snackshop/internal/adapters/out/postgres/settingsrepo"
	"snackshop/internal/adapters/out/postgres/smsrepo"
	"snackshop/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or alters every table the repositories and queries use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&userrepo.UserDTO{},
		&userrepo.SessionDTO{},
		&settingsrepo.SettingDTO{},
		&settingsrepo.AdminContactDTO{},
		&smsrepo.NotificationDTO{},
	)
}

// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a value built by its constructor,
// a handler that validates it, opens a unit of work, applies domain methods
// and commits.
package commands

import (
	"context"

	"snackshop/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	SmsLogRepoFactory interface {
		SmsLogRepository() ports.SmsLogRepository
	}

	// OrderUoW is used by order commands. Orders feed customer statistics,
	// so the customer repository shares the transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// AccountUoW covers users and their sessions.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// SmsUoW reads the order and appends to the SMS log.
	SmsUoW interface {
		TxManager
		OrderRepoFactory
		SmsLogRepoFactory
	}

	SmsUoWFactory interface {
		Create() SmsUoW
	}
)

package settings

import (
	"strings"

	"snackshop/internal/core/domain/model/kernel"
)

// AdminContact is the single admin_settings row. Phone is the SMS sender
// number; BankAccount is quoted in the order-received message.
type AdminContact struct {
	Name        string
	Phone       string
	Email       string
	BankAccount string
}

// Normalize trims fields and rewrites the phone in its hyphenated form.
func (c AdminContact) Normalize() (AdminContact, error) {
	out := AdminContact{
		Name:        strings.TrimSpace(c.Name),
		Email:       strings.TrimSpace(c.Email),
		BankAccount: strings.TrimSpace(c.BankAccount),
	}
	if strings.TrimSpace(c.Phone) != "" {
		p, err := kernel.NewPhone(c.Phone)
		if err != nil {
			return AdminContact{}, err
		}
		out.Phone = p.Formatted()
	}
	return out, nil
}

// Package customerrepo maps Customer aggregates to the customers table and
// their remembered addresses to customer_addresses.
package customerrepo

import (
	"time"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:50;not null"`
	Phone      string `gorm:"size:11;not null;uniqueIndex"`
	PostalCode string `gorm:"size:5"`
	Address1   string `gorm:"size:200"`
	Address2   string `gorm:"size:200"`
	Notes      string `gorm:"size:1000"`

	OrderCount    int   `gorm:"not null;default:0"`
	TotalSpent    int64 `gorm:"not null;default:0"`
	LastOrderDate *time.Time

	IsDeleted bool `gorm:"not null;default:false;index"`
	DeletedAt *time.Time

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is unique per customer, postal code and first line.
type AddressDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"not null;uniqueIndex:idx_customer_address"`
	PostalCode string    `gorm:"size:5;not null;default:'';uniqueIndex:idx_customer_address"`
	Address1   string    `gorm:"size:200;not null;uniqueIndex:idx_customer_address"`
	Address2   string    `gorm:"size:200"`
	LastUsedAt time.Time `gorm:"not null;index"`
}

func (AddressDTO) TableName() string {
	return "customer_addresses"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	s := c.Snapshot()
	dto := CustomerDTO{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone.String(),
		Notes:         s.Notes,
		OrderCount:    s.OrderCount,
		TotalSpent:    s.TotalSpent,
		LastOrderDate: s.LastOrderDate,
		IsDeleted:     s.IsDeleted,
		DeletedAt:     s.DeletedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if a := s.Address; a != nil {
		dto.PostalCode = a.PostalCode()
		dto.Address1 = a.Line1()
		dto.Address2 = a.Line2()
	}
	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	var addr *kernel.Address
	if dto.Address1 != "" {
		a, addrErr := kernel.NewAddress(dto.PostalCode, dto.Address1, dto.Address2)
		if addrErr != nil {
			return nil, addrErr
		}
		addr = &a
	}

	return customer.RestoreCustomer(customer.Snapshot{
		ID:            dto.ID,
		Name:          dto.Name,
		Phone:         phone,
		Address:       addr,
		Notes:         dto.Notes,
		OrderCount:    dto.OrderCount,
		TotalSpent:    dto.TotalSpent,
		LastOrderDate: dto.LastOrderDate,
		IsDeleted:     dto.IsDeleted,
		DeletedAt:     dto.DeletedAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}), nil
}

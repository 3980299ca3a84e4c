// Package orderrepo maps Order aggregates to the orders table.
package orderrepo

import (
	"errors"
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/pricing"
)

// OrderDTO is one row of the orders table. Money columns are whole won.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Version     int64  `gorm:"not null;default:1"`
	OrderNumber string `gorm:"size:32;not null;uniqueIndex"`

	CustomerName    string `gorm:"size:50;not null"`
	Phone           string `gorm:"size:11;not null;index"`
	PostalCode      string `gorm:"size:5"`
	Address1        string `gorm:"size:200;not null"`
	Address2        string `gorm:"size:200"`
	SpecialRequests string `gorm:"size:500"`

	RecipientName       string `gorm:"size:50"`
	RecipientPhone      string `gorm:"size:11"`
	RecipientPostalCode string `gorm:"size:5"`
	RecipientAddress1   string `gorm:"size:200"`
	RecipientAddress2   string `gorm:"size:200"`

	DepositorName    string `gorm:"size:50"`
	DepositorDiffers bool   `gorm:"not null;default:false"`

	SmallBoxQuantity int `gorm:"not null;default:0"`
	LargeBoxQuantity int `gorm:"not null;default:0"`
	WrappingQuantity int `gorm:"not null;default:0"`

	PasswordHash string `gorm:"size:100"`
	UserID       *int64 `gorm:"index"`

	ShippingFee      int64  `gorm:"not null;default:0"`
	TotalAmount      int64  `gorm:"not null"`
	ActualPaidAmount *int64
	DiscountAmount   int64  `gorm:"not null;default:0"`
	DiscountReason   string `gorm:"size:200"`

	SmallBoxCost int64 `gorm:"not null;default:0"`
	LargeBoxCost int64 `gorm:"not null;default:0"`
	WrappingCost int64 `gorm:"not null;default:0"`
	TotalCost    int64 `gorm:"not null;default:0"`
	NetProfit    int64 `gorm:"not null;default:0"`

	Status             string `gorm:"size:20;not null;index"`
	PaymentStatus      string `gorm:"size:20;not null;index"`
	PaymentConfirmedAt *time.Time

	ScheduledDate     *time.Time `gorm:"type:date"`
	SellerShipped     bool       `gorm:"not null;default:false"`
	SellerShippedDate *time.Time `gorm:"type:date"`
	DeliveredDate     *time.Time `gorm:"type:date"`

	IsDeleted bool `gorm:"not null;default:false;index"`
	DeletedAt *time.Time

	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	d := s.Details

	dto := OrderDTO{
		ID:                 s.ID,
		Version:            s.Version,
		OrderNumber:        s.Number.String(),
		CustomerName:       d.CustomerName,
		Phone:              d.Phone.String(),
		PostalCode:         d.Address.PostalCode(),
		Address1:           d.Address.Line1(),
		Address2:           d.Address.Line2(),
		SpecialRequests:    d.SpecialRequests,
		DepositorName:      d.DepositorName,
		DepositorDiffers:   d.DepositorDiffers,
		SmallBoxQuantity:   d.Quantities.SmallBoxes,
		LargeBoxQuantity:   d.Quantities.LargeBoxes,
		WrappingQuantity:   d.Quantities.Wrappings,
		PasswordHash:       s.PasswordHash.String(),
		UserID:             s.OwnerID,
		ShippingFee:        s.ShippingFee,
		TotalAmount:        s.TotalAmount,
		ActualPaidAmount:   s.ActualPaidAmount,
		DiscountAmount:     s.DiscountAmount,
		DiscountReason:     s.DiscountReason,
		SmallBoxCost:       s.Costs.SmallBoxCost,
		LargeBoxCost:       s.Costs.LargeBoxCost,
		WrappingCost:       s.Costs.WrappingCost,
		TotalCost:          s.TotalCost,
		NetProfit:          s.NetProfit,
		Status:             s.Status.String(),
		PaymentStatus:      s.PaymentStatus.String(),
		PaymentConfirmedAt: s.PaymentConfirmedAt,
		ScheduledDate:      s.ScheduledDate,
		SellerShipped:      s.SellerShipped,
		SellerShippedDate:  s.SellerShippedDate,
		DeliveredDate:      s.DeliveredDate,
		IsDeleted:          s.IsDeleted,
		DeletedAt:          s.DeletedAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if r := d.Recipient; r != nil {
		dto.RecipientName = r.Name
		dto.RecipientPhone = r.Phone.String()
		dto.RecipientPostalCode = r.Address.PostalCode()
		dto.RecipientAddress1 = r.Address.Line1()
		dto.RecipientAddress2 = r.Address.Line2()
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	phone, phoneErr := kernel.NewPhone(dto.Phone)
	addr, addrErr := kernel.NewAddress(dto.PostalCode, dto.Address1, dto.Address2)
	status, statusErr := order.ParseStatus(dto.Status)
	paymentStatus, paymentErr := order.ParsePaymentStatus(dto.PaymentStatus)
	if err := errors.Join(phoneErr, addrErr, statusErr, paymentErr); err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName:     dto.CustomerName,
		Phone:            phone,
		Address:          addr,
		SpecialRequests:  dto.SpecialRequests,
		DepositorName:    dto.DepositorName,
		DepositorDiffers: dto.DepositorDiffers,
		Quantities: pricing.Quantities{
			SmallBoxes: dto.SmallBoxQuantity,
			LargeBoxes: dto.LargeBoxQuantity,
			Wrappings:  dto.WrappingQuantity,
		},
	}

	if dto.RecipientName != "" {
		rPhone, rPhoneErr := kernel.NewPhone(dto.RecipientPhone)
		rAddr, rAddrErr := kernel.NewAddress(dto.RecipientPostalCode, dto.RecipientAddress1, dto.RecipientAddress2)
		if err := errors.Join(rPhoneErr, rAddrErr); err != nil {
			return nil, err
		}
		details.Recipient = &order.Recipient{Name: dto.RecipientName, Phone: rPhone, Address: rAddr}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               dto.ID,
		Version:          dto.Version,
		Number:           order.Number(dto.OrderNumber),
		Details:          details,
		PasswordHash:     kernel.RestorePasswordHash(dto.PasswordHash),
		OwnerID:          dto.UserID,
		ShippingFee:      dto.ShippingFee,
		TotalAmount:      dto.TotalAmount,
		ActualPaidAmount: dto.ActualPaidAmount,
		DiscountAmount:   dto.DiscountAmount,
		DiscountReason:   dto.DiscountReason,
		Costs: pricing.CostSnapshot{
			SmallBoxCost: dto.SmallBoxCost,
			LargeBoxCost: dto.LargeBoxCost,
			WrappingCost: dto.WrappingCost,
		},
		TotalCost:          dto.TotalCost,
		NetProfit:          dto.NetProfit,
		Status:             status,
		PaymentStatus:      paymentStatus,
		PaymentConfirmedAt: dto.PaymentConfirmedAt,
		ScheduledDate:      dto.ScheduledDate,
		SellerShipped:      dto.SellerShipped,
		SellerShippedDate:  dto.SellerShippedDate,
		DeliveredDate:      dto.DeliveredDate,
		IsDeleted:          dto.IsDeleted,
		DeletedAt:          dto.DeletedAt,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

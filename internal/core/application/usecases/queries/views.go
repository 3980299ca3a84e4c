package queries

import (
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
)

// OrderView is the read model of an order. Costs is only filled for staff.
type OrderView struct {
	ID              int64  `json:"id"`
	OrderNumber     string `json:"orderNumber"`
	CustomerName    string `json:"customerName"`
	Phone           string `json:"phone"`
	PostalCode      string `json:"postalCode,omitempty"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	RecipientName       string `json:"recipientName,omitempty"`
	RecipientPhone      string `json:"recipientPhone,omitempty"`
	RecipientPostalCode string `json:"recipientPostalCode,omitempty"`
	RecipientAddress1   string `json:"recipientAddress1,omitempty"`
	RecipientAddress2   string `json:"recipientAddress2,omitempty"`

	DepositorName    string `json:"depositorName,omitempty"`
	DepositorDiffers bool   `json:"depositorDiffers"`

	SmallBoxQuantity int `json:"smallBoxQuantity"`
	LargeBoxQuantity int `json:"largeBoxQuantity"`
	WrappingQuantity int `json:"wrappingQuantity"`

	ShippingFee      int64  `json:"shippingFee"`
	TotalAmount      int64  `json:"totalAmount"`
	ActualPaidAmount *int64 `json:"actualPaidAmount"`
	DiscountAmount   int64  `json:"discountAmount"`
	DiscountReason   string `json:"discountReason,omitempty"`

	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentConfirmedAt *time.Time `json:"paymentConfirmedAt"`

	ScheduledDate     *time.Time `json:"scheduledDate"`
	SellerShipped     bool       `json:"sellerShipped"`
	SellerShippedDate *time.Time `json:"sellerShippedDate"`
	DeliveredDate     *time.Time `json:"deliveredDate"`

	HasPassword bool       `json:"hasPassword"`
	IsDeleted   bool       `json:"isDeleted"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Costs *CostView `json:"costs,omitempty"`
}

// CostView is the staff-only cost breakdown of an order.
type CostView struct {
	SmallBoxCost int64 `json:"smallBoxCost"`
	LargeBoxCost int64 `json:"largeBoxCost"`
	WrappingCost int64 `json:"wrappingCost"`
	TotalCost    int64 `json:"totalCost"`
	NetProfit    int64 `json:"netProfit"`
}

// orderRow is scanned from the orders table.
type orderRow struct {
	ID                  int64
	OrderNumber         string
	CustomerName        string
	Phone               string
	PostalCode          string
	Address1            string
	Address2            string
	SpecialRequests     string
	RecipientName       string
	RecipientPhone      string
	RecipientPostalCode string
	RecipientAddress1   string
	RecipientAddress2   string
	DepositorName       string
	DepositorDiffers    bool
	SmallBoxQuantity    int
	LargeBoxQuantity    int
	WrappingQuantity    int
	PasswordHash        string
	ShippingFee         int64
	TotalAmount         int64
	ActualPaidAmount    *int64
	DiscountAmount      int64
	DiscountReason      string
	SmallBoxCost        int64
	LargeBoxCost        int64
	WrappingCost        int64
	TotalCost           int64
	NetProfit           int64
	Status              string
	PaymentStatus       string
	PaymentConfirmedAt  *time.Time
	ScheduledDate       *time.Time
	SellerShipped       bool
	SellerShippedDate   *time.Time
	DeliveredDate       *time.Time
	IsDeleted           bool
	DeletedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (r orderRow) view(withCosts bool) OrderView {
	v := OrderView{
		ID:                  r.ID,
		OrderNumber:         r.OrderNumber,
		CustomerName:        r.CustomerName,
		Phone:               formatPhone(r.Phone),
		PostalCode:          r.PostalCode,
		Address1:            r.Address1,
		Address2:            r.Address2,
		SpecialRequests:     r.SpecialRequests,
		RecipientName:       r.RecipientName,
		RecipientPhone:      formatPhone(r.RecipientPhone),
		RecipientPostalCode: r.RecipientPostalCode,
		RecipientAddress1:   r.RecipientAddress1,
		RecipientAddress2:   r.RecipientAddress2,
		DepositorName:       r.DepositorName,
		DepositorDiffers:    r.DepositorDiffers,
		SmallBoxQuantity:    r.SmallBoxQuantity,
		LargeBoxQuantity:    r.LargeBoxQuantity,
		WrappingQuantity:    r.WrappingQuantity,
		ShippingFee:         r.ShippingFee,
		TotalAmount:         r.TotalAmount,
		ActualPaidAmount:    r.ActualPaidAmount,
		DiscountAmount:      r.DiscountAmount,
		DiscountReason:      r.DiscountReason,
		Status:              r.Status,
		PaymentStatus:       r.PaymentStatus,
		PaymentConfirmedAt:  r.PaymentConfirmedAt,
		ScheduledDate:       r.ScheduledDate,
		SellerShipped:       r.SellerShipped,
		SellerShippedDate:   r.SellerShippedDate,
		DeliveredDate:       r.DeliveredDate,
		HasPassword:         r.PasswordHash != "",
		IsDeleted:           r.IsDeleted,
		DeletedAt:           r.DeletedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if withCosts {
		v.Costs = &CostView{
			SmallBoxCost: r.SmallBoxCost,
			LargeBoxCost: r.LargeBoxCost,
			WrappingCost: r.WrappingCost,
			TotalCost:    r.TotalCost,
			NetProfit:    r.NetProfit,
		}
	}
	return v
}

// orderView maps a loaded aggregate, used where access checks need the
// aggregate anyway.
func orderView(o *order.Order, withCosts bool) OrderView {
	s := o.Snapshot()
	d := s.Details

	v := OrderView{
		ID:                 s.ID,
		OrderNumber:        s.Number.String(),
		CustomerName:       d.CustomerName,
		Phone:              d.Phone.Formatted(),
		PostalCode:         d.Address.PostalCode(),
		Address1:           d.Address.Line1(),
		Address2:           d.Address.Line2(),
		SpecialRequests:    d.SpecialRequests,
		DepositorName:      d.DepositorName,
		DepositorDiffers:   d.DepositorDiffers,
		SmallBoxQuantity:   d.Quantities.SmallBoxes,
		LargeBoxQuantity:   d.Quantities.LargeBoxes,
		WrappingQuantity:   d.Quantities.Wrappings,
		ShippingFee:        s.ShippingFee,
		TotalAmount:        s.TotalAmount,
		ActualPaidAmount:   s.ActualPaidAmount,
		DiscountAmount:     s.DiscountAmount,
		DiscountReason:     s.DiscountReason,
		Status:             s.Status.String(),
		PaymentStatus:      s.PaymentStatus.String(),
		PaymentConfirmedAt: s.PaymentConfirmedAt,
		ScheduledDate:      s.ScheduledDate,
		SellerShipped:      s.SellerShipped,
		SellerShippedDate:  s.SellerShippedDate,
		DeliveredDate:      s.DeliveredDate,
		HasPassword:        s.PasswordHash.IsSet(),
		IsDeleted:          s.IsDeleted,
		DeletedAt:          s.DeletedAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if r := d.Recipient; r != nil {
		v.RecipientName = r.Name
		v.RecipientPhone = r.Phone.Formatted()
		v.RecipientPostalCode = r.Address.PostalCode()
		v.RecipientAddress1 = r.Address.Line1()
		v.RecipientAddress2 = r.Address.Line2()
	}
	if withCosts {
		v.Costs = &CostView{
			SmallBoxCost: s.Costs.SmallBoxCost,
			LargeBoxCost: s.Costs.LargeBoxCost,
			WrappingCost: s.Costs.WrappingCost,
			TotalCost:    s.TotalCost,
			NetProfit:    s.NetProfit,
		}
	}
	return v
}

func formatPhone(digits string) string {
	if digits == "" {
		return ""
	}
	p, err := kernel.NewPhone(digits)
	if err != nil {
		return digits
	}
	return p.Formatted()
}

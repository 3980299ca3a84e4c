package http

import (
	"strconv"
	"strings"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
)

const dateLayout = "2006-01-02"

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

type orderRequest struct {
	CustomerName    string `json:"customerName"`
	Phone           string `json:"phone"`
	PostalCode      string `json:"postalCode"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	SpecialRequests string `json:"specialRequests"`

	RecipientName       string `json:"recipientName"`
	RecipientPhone      string `json:"recipientPhone"`
	RecipientPostalCode string `json:"recipientPostalCode"`
	RecipientAddress1   string `json:"recipientAddress1"`
	RecipientAddress2   string `json:"recipientAddress2"`

	DepositorName    string `json:"depositorName"`
	DepositorDiffers bool   `json:"depositorDiffers"`

	SmallBoxQuantity int `json:"smallBoxQuantity"`
	LargeBoxQuantity int `json:"largeBoxQuantity"`
	WrappingQuantity int `json:"wrappingQuantity"`

	OrderPassword string `json:"orderPassword"`
	TotalAmount   *int64 `json:"totalAmount"`
}

func (r orderRequest) input() commands.OrderDetailsInput {
	return commands.OrderDetailsInput{
		CustomerName:        r.CustomerName,
		Phone:               r.Phone,
		PostalCode:          r.PostalCode,
		Address1:            r.Address1,
		Address2:            r.Address2,
		SpecialRequests:     r.SpecialRequests,
		RecipientName:       r.RecipientName,
		RecipientPhone:      r.RecipientPhone,
		RecipientPostalCode: r.RecipientPostalCode,
		RecipientAddress1:   r.RecipientAddress1,
		RecipientAddress2:   r.RecipientAddress2,
		DepositorName:       r.DepositorName,
		DepositorDiffers:    r.DepositorDiffers,
		SmallBoxQuantity:    r.SmallBoxQuantity,
		LargeBoxQuantity:    r.LargeBoxQuantity,
		WrappingQuantity:    r.WrappingQuantity,
	}
}

type statusRequest struct {
	Status  string `json:"status"`
	SendSms bool   `json:"sendSms"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
	SendSms       bool   `json:"sendSms"`
}

// fulfillmentRequest distinguishes an omitted date (keep) from null (clear).
type fulfillmentRequest struct {
	ScheduledDate     nullable.Nullable[string] `json:"scheduledDate"`
	SellerShipped     *bool                     `json:"sellerShipped"`
	SellerShippedDate nullable.Nullable[string] `json:"sellerShippedDate"`
	DeliveredDate     nullable.Nullable[string] `json:"deliveredDate"`
}

func (r fulfillmentRequest) fulfillment() (order.Fulfillment, error) {
	scheduled, err := dateChange("scheduledDate", r.ScheduledDate)
	if err != nil {
		return order.Fulfillment{}, err
	}
	shipped, err := dateChange("sellerShippedDate", r.SellerShippedDate)
	if err != nil {
		return order.Fulfillment{}, err
	}
	delivered, err := dateChange("deliveredDate", r.DeliveredDate)
	if err != nil {
		return order.Fulfillment{}, err
	}
	return order.Fulfillment{
		ScheduledDate:     scheduled,
		SellerShipped:     r.SellerShipped,
		SellerShippedDate: shipped,
		DeliveredDate:     delivered,
	}, nil
}

func dateChange(field string, v nullable.Nullable[string]) (order.DateChange, error) {
	switch {
	case !v.IsSpecified():
		return order.KeepDate(), nil
	case v.IsNull():
		return order.ClearDate(), nil
	}
	raw := strings.TrimSpace(v.MustGet())
	if raw == "" {
		return order.ClearDate(), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return order.DateChange{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return order.SetDate(t), nil
}

type discountRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type paidAmountRequest struct {
	ActualPaidAmount *int64 `json:"actualPaidAmount"`
}

type idsRequest struct {
	IDs []int64 `json:"ids"`
}

type smsRequest struct {
	Template string `json:"template"`
	Text     string `json:"text"`
}

type customerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postalCode"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Notes      string `json:"notes"`
}

func (r customerRequest) input() commands.CustomerInput {
	return commands.CustomerInput{
		Name:       r.Name,
		Phone:      r.Phone,
		PostalCode: r.PostalCode,
		Address1:   r.Address1,
		Address2:   r.Address2,
		Notes:      r.Notes,
	}
}

// pricingRequest leaves omitted fields at their current value.
type pricingRequest struct {
	SmallBoxPrice         *int64 `json:"smallBoxPrice"`
	LargeBoxPrice         *int64 `json:"largeBoxPrice"`
	WrappingPrice         *int64 `json:"wrappingPrice"`
	ShippingFee           *int64 `json:"shippingFee"`
	FreeShippingThreshold *int   `json:"freeShippingThreshold"`
	SmallBoxCost          *int64 `json:"smallBoxCost"`
	LargeBoxCost          *int64 `json:"largeBoxCost"`
	WrappingCost          *int64 `json:"wrappingCost"`
}

type adminContactRequest struct {
	Name        string `json:"adminName"`
	Phone       string `json:"adminPhone"`
	Email       string `json:"adminEmail"`
	BankAccount string `json:"bankAccount"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type activeRequest struct {
	Active bool `json:"active"`
}

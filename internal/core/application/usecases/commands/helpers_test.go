package commands_test

import (
	"testing"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/pricing"
	"snackshop/internal/core/domain/model/settings"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 11, 20, 10, 30, 0, 0, time.UTC)

const orderPassword = "4821"

func orderInput() commands.OrderDetailsInput {
	return commands.OrderDetailsInput{
		CustomerName:     "김한과",
		Phone:            "010-1234-5678",
		PostalCode:       "06236",
		Address1:         "서울시 강남구 테헤란로 1",
		Address2:         "101호",
		SmallBoxQuantity: 2,
	}
}

func testPhone(t *testing.T, raw string) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone(raw)
	require.NoError(t, err)
	return p
}

// storedOrder returns a persisted pending order with two small boxes.
func storedOrder(t *testing.T, id int64, ownerID *int64) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("06236", "서울시 강남구 테헤란로 1", "101호")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Placement{
		Number: order.NewNumber(placedAt),
		Details: order.Details{
			CustomerName: "김한과",
			Phone:        testPhone(t, "010-1234-5678"),
			Address:      addr,
			Quantities:   pricing.Quantities{SmallBoxes: 2},
		},
		Password: orderPassword,
		OwnerID:  ownerID,
		Pricing:  settings.DefaultPricing(),
		PlacedAt: placedAt,
	})
	require.NoError(t, err)
	o.MarkPersisted(id, 1)
	return o
}

func storedCustomer(t *testing.T, id int64, phone string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(customer.Profile{Name: "고객" + phone[len(phone)-4:], Phone: testPhone(t, phone)}, placedAt)
	require.NoError(t, err)
	c.AssignID(id)
	return c
}

package queries_test

import (
	"context"

	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/settings"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateIfCustomerEditable(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) Pricing(ctx context.Context) (settings.Pricing, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Pricing), args.Error(1)
}

func (m *MockSettingsProvider) AdminContact(ctx context.Context) (settings.AdminContact, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.AdminContact), args.Error(1)
}

func (m *MockSettingsProvider) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

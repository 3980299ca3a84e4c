package http_test

import (
	"context"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/settings"

	"github.com/stretchr/testify/mock"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Handle(ctx context.Context, token string) (commands.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(commands.Principal), args.Error(1)
}

type MockPlaceOrderHandler struct {
	mock.Mock
}

func (m *MockPlaceOrderHandler) Handle(
	ctx context.Context,
	cmd commands.PlaceOrderCommand,
) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockGetOrderHandler struct {
	mock.Mock
}

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockLookupOrdersHandler struct {
	mock.Mock
}

func (m *MockLookupOrdersHandler) Handle(
	ctx context.Context,
	query queries.LookupOrdersQuery,
) ([]queries.LookupOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.LookupOrdersQueryResponse), args.Error(1)
}

type MockUpdateFulfillmentHandler struct {
	mock.Mock
}

func (m *MockUpdateFulfillmentHandler) Handle(ctx context.Context, cmd commands.UpdateFulfillmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockTrashHandler struct {
	mock.Mock
}

func (m *MockTrashHandler) Handle(ctx context.Context, cmd commands.BulkTrashCommand) (commands.BulkResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.BulkResult), args.Error(1)
}

type MockExportOrdersHandler struct {
	mock.Mock
}

func (m *MockExportOrdersHandler) Handle(
	ctx context.Context,
	actor access.Actor,
	filter queries.OrderFilter,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockSettingsQueryHandler struct {
	mock.Mock
}

func (m *MockSettingsQueryHandler) Pricing(ctx context.Context, actor access.Actor) (queries.PricingView, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(queries.PricingView), args.Error(1)
}

func (m *MockSettingsQueryHandler) AdminContact(
	ctx context.Context,
	actor access.Actor,
) (queries.AdminContactView, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(queries.AdminContactView), args.Error(1)
}

type MockUpdateSettingsHandler struct {
	mock.Mock
}

func (m *MockUpdateSettingsHandler) UpdatePricing(ctx context.Context, actor access.Actor, p settings.Pricing) error {
	return m.Called(ctx, actor, p).Error(0)
}

func (m *MockUpdateSettingsHandler) UpdateAdminContact(
	ctx context.Context,
	actor access.Actor,
	c settings.AdminContact,
) (settings.AdminContact, error) {
	args := m.Called(ctx, actor, c)
	return args.Get(0).(settings.AdminContact), args.Error(1)
}

type MockChangeOrderStatusHandler struct {
	mock.Mock
}

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockChangePaymentStatusHandler struct {
	mock.Mock
}

func (m *MockChangePaymentStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangePaymentStatusCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

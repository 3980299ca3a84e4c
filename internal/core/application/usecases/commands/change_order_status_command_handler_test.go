package commands_test

import (
	"errors"
	"strings"
	"testing"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var manager = access.Staff{UserID: 2, Role: user.RoleManager}

type statusFixture struct {
	order     *order.Order
	orderRepo *MockOrderRepository
	orderUoW  *MockUoW
	smsRepo   *MockSmsLogRepository
	smsUoW    *MockUoW
	notifier  *MockNotifier
	handler   commands.ChangeOrderStatusCommandHandler
}

func newStatusFixture(t *testing.T) *statusFixture {
	t.Helper()
	ctx := t.Context()
	f := &statusFixture{
		order:     storedOrder(t, 7, nil),
		orderRepo: new(MockOrderRepository),
		orderUoW:  new(MockUoW),
		smsRepo:   new(MockSmsLogRepository),
		smsUoW:    new(MockUoW),
		notifier:  new(MockNotifier),
	}
	f.orderRepo.On("Get", ctx, int64(7)).Return(f.order, nil)
	f.orderUoW.On("OrderRepository").Return(f.orderRepo)
	f.smsUoW.On("SmsLogRepository").Return(f.smsRepo)

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(f.orderUoW)
	smsFactory := new(MockSmsUoWFactory)
	smsFactory.On("Create").Return(f.smsUoW)

	provider := new(MockSettingsProvider)
	provider.On("AdminContact", ctx).Return(settings.AdminContact{Name: "한과명가", Phone: "010-9999-0000"}, nil)

	f.handler = commands.NewChangeOrderStatusCommandHandler(orderFactory, smsFactory, f.notifier, provider)
	return f
}

func TestChangeOrderStatusCommandHandler_Handle_NoopSendsNothing(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	f.orderUoW.expectTx(ctx, false)

	cmd, err := commands.NewChangeOrderStatusCommand(7, manager, "pending", true)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Nil(t, result.Notification)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	f.smsRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotifiesOnShipping(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	f.orderUoW.expectTx(ctx, true)
	f.orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	f.notifier.On("Send", ctx, mock.MatchedBy(func(m sms.Message) bool {
		return m.OrderID == 7 && m.Phone == "010-1234-5678" &&
			strings.HasPrefix(m.Text, "[한과명가] ") && strings.HasSuffix(m.Text, "문의: 010-9999-0000")
	})).Return(nil).Once()
	f.smsUoW.expectTx(ctx, true)
	f.smsRepo.On("Append", ctx, mock.MatchedBy(func(n *sms.Notification) bool { return n.Succeeded })).
		Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(7, manager, "shipping", true)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	require.NotNil(t, result.Notification)
	assert.True(t, result.Notification.Succeeded)
	assert.Equal(t, order.StatusShipping, f.order.Status())
	f.notifier.AssertExpectations(t)
	f.smsRepo.AssertExpectations(t)
	f.orderUoW.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DispatcherFailureKeepsChange(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	f.orderUoW.expectTx(ctx, true)
	f.orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	f.notifier.On("Send", ctx, mock.Anything).Return(errors.New("broker unreachable")).Once()
	f.smsUoW.expectTx(ctx, true)
	f.smsRepo.On("Append", ctx, mock.MatchedBy(func(n *sms.Notification) bool {
		return !n.Succeeded && n.Error == "broker unreachable"
	})).Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(7, manager, "seller_shipped", true)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.ErrorIs(t, result.SmsError, errs.ErrUpstream)
	assert.True(t, result.Changed)
	require.NotNil(t, result.Notification)
	assert.False(t, result.Notification.Succeeded)
	assert.True(t, f.order.SellerShipped())
	f.orderUoW.AssertCalled(t, "Commit", ctx)
	f.smsRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_UnreadableContactKeepsChange(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, 7, nil)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(7)).Return(o, nil)
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.expectTx(ctx, true)
	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow)
	provider := new(MockSettingsProvider)
	provider.On("AdminContact", ctx).Return(settings.AdminContact{}, errors.New("settings unavailable"))
	notifier := new(MockNotifier)
	handler := commands.NewChangeOrderStatusCommandHandler(orderFactory, new(MockSmsUoWFactory), notifier, provider)

	cmd, err := commands.NewChangeOrderStatusCommand(7, manager, "seller_shipped", true)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Notification)
	require.EqualError(t, result.SmsError, "settings unavailable")
	uow.AssertCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_WithoutNotify(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	f.orderUoW.expectTx(ctx, true)
	f.orderRepo.On("Update", ctx, f.order).Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(7, manager, "delivered", false)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.NotNil(t, f.order.DeliveredDate())
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_AdminCannotDeliver(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	f.orderUoW.expectTx(ctx, false)

	cmd, err := commands.NewChangeOrderStatusCommand(7, access.Staff{UserID: 1, Role: user.RoleAdmin}, "delivered", true)
	require.NoError(t, err)

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.StatusPending, f.order.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerForbidden(t *testing.T) {
	f := newStatusFixture(t)
	cmd, err := commands.NewChangeOrderStatusCommand(7, access.Owner{UserID: 5}, "shipping", false)
	require.NoError(t, err)

	_, err = f.handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	f.orderUoW.AssertNotCalled(t, "Begin", mock.Anything)
}

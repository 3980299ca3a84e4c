package commands_test

import (
	"context"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateIfCustomerEditable(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepository) RememberAddress(ctx context.Context, entry customer.AddressEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*session.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSessionRepository) Touch(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) LoadPricing(ctx context.Context) (settings.Pricing, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Pricing), args.Error(1)
}
func (m *MockSettingsRepository) SavePricing(ctx context.Context, p settings.Pricing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockSettingsRepository) LoadAdminContact(ctx context.Context) (settings.AdminContact, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.AdminContact), args.Error(1)
}
func (m *MockSettingsRepository) SaveAdminContact(ctx context.Context, c settings.AdminContact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockSmsLogRepository struct{ mock.Mock }

func (m *MockSmsLogRepository) Append(ctx context.Context, n *sms.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}
func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}
func (m *MockUoW) SmsLogRepository() ports.SmsLogRepository {
	args := m.Called()
	return args.Get(0).(ports.SmsLogRepository)
}

// expectTx registers Begin, an optional Commit and the deferred Rollback.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil)
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}

type MockSmsUoWFactory struct{ mock.Mock }

func (m *MockSmsUoWFactory) Create() commands.SmsUoW {
	args := m.Called()
	return args.Get(0).(commands.SmsUoW)
}

// customerTrashFactory adapts the customer factory mock for the bulk handler.
type customerTrashFactory struct{ inner *MockCustomerUoWFactory }

func (f customerTrashFactory) Create() commands.TrashUoW[*customer.Customer] {
	return commands.NewCustomerTrashUoW(f.inner.Create())
}

type orderTrashFactory struct{ inner *MockOrderUoWFactory }

func (f orderTrashFactory) Create() commands.TrashUoW[*order.Order] {
	return commands.NewOrderTrashUoW(f.inner.Create())
}

type MockSettingsProvider struct{ mock.Mock }

func (m *MockSettingsProvider) Pricing(ctx context.Context) (settings.Pricing, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Pricing), args.Error(1)
}
func (m *MockSettingsProvider) AdminContact(ctx context.Context) (settings.AdminContact, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.AdminContact), args.Error(1)
}
func (m *MockSettingsProvider) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, msg sms.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	args := m.Called(sessionID, expiresAt)
	return args.String(0), args.Error(1)
}
func (m *MockTokenIssuer) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

package settingscache_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"snackshop/internal/adapters/out/settingscache"
	"snackshop/internal/core/domain/model/settings"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) LoadPricing(ctx context.Context) (settings.Pricing, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Pricing), args.Error(1)
}

func (m *MockSettingsRepository) SavePricing(ctx context.Context, p settings.Pricing) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSettingsRepository) LoadAdminContact(ctx context.Context) (settings.AdminContact, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.AdminContact), args.Error(1)
}

func (m *MockSettingsRepository) SaveAdminContact(ctx context.Context, c settings.AdminContact) error {
	return m.Called(ctx, c).Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestProvider_WithoutRedis_ReadsThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	repo.On("LoadPricing", ctx).Return(settings.DefaultPricing(), nil).Twice()

	p, err := settingscache.NewProvider(repo, nil, time.Minute, quietLogger())
	require.NoError(t, err)

	for range 2 {
		got, err := p.Pricing(ctx)
		require.NoError(t, err)
		assert.Equal(t, settings.DefaultPricing(), got)
	}
	require.NoError(t, p.Invalidate(ctx))
	repo.AssertExpectations(t)
}

type ProviderRedisTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *ProviderRedisTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)
	suite.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
}

func (suite *ProviderRedisTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *ProviderRedisTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProviderRedisTestSuite) TestSecondReadIsServedFromCache() {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	contact := settings.AdminContact{Name: "한과당", Phone: "010-1234-5678", BankAccount: "농협 1"}
	repo.On("LoadAdminContact", ctx).Return(contact, nil).Once()

	p, err := settingscache.NewProvider(repo, suite.client, time.Minute, quietLogger())
	suite.Require().NoError(err)

	first, err := p.AdminContact(ctx)
	suite.Require().NoError(err)
	second, err := p.AdminContact(ctx)
	suite.Require().NoError(err)

	suite.Equal(contact, first)
	suite.Equal(contact, second)
	repo.AssertExpectations(suite.T())
}

func (suite *ProviderRedisTestSuite) TestInvalidateForcesReload() {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	old := settings.DefaultPricing()
	updated := old
	updated.ShippingFee = 3000
	repo.On("LoadPricing", ctx).Return(old, nil).Once()
	repo.On("LoadPricing", ctx).Return(updated, nil).Once()

	p, err := settingscache.NewProvider(repo, suite.client, time.Minute, quietLogger())
	suite.Require().NoError(err)

	got, err := p.Pricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(4000), got.ShippingFee)

	suite.Require().NoError(p.Invalidate(ctx))
	got, err = p.Pricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3000), got.ShippingFee)
	repo.AssertExpectations(suite.T())
}

func (suite *ProviderRedisTestSuite) TestLoadOverlappingInvalidateIsNotServedAgain() {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	old := settings.DefaultPricing()
	updated := old
	updated.ShippingFee = 3000

	p, err := settingscache.NewProvider(repo, suite.client, time.Minute, quietLogger())
	suite.Require().NoError(err)

	repo.On("LoadPricing", ctx).Run(func(mock.Arguments) {
		suite.Require().NoError(p.Invalidate(ctx))
	}).Return(old, nil).Once()
	repo.On("LoadPricing", ctx).Return(updated, nil).Once()

	got, err := p.Pricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(4000), got.ShippingFee)

	got, err = p.Pricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3000), got.ShippingFee)

	got, err = p.Pricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3000), got.ShippingFee)
	repo.AssertExpectations(suite.T())
}

func TestProviderRedisTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderRedisTestSuite))
}

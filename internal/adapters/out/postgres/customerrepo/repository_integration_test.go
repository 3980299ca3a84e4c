package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"snackshop/internal/adapters/out/postgres/customerrepo"
	"snackshop/internal/adapters/out/postgres/pgtest"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = customerrepo.NewGormCustomerRepository(suite.pg.DB)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) addCustomer(name, phone string) *customer.Customer {
	c, err := pgtest.NewCustomer(name, phone)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicatePhone_ReturnsConflict() {
	suite.addCustomer("김한과", "010-1234-5678")

	dup, err := pgtest.NewCustomer("이약과", "01012345678")
	suite.Require().NoError(err)
	err = suite.repository.Add(context.Background(), dup)

	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestFindByPhone() {
	ctx := context.Background()
	c := suite.addCustomer("김한과", "010-1234-5678")

	suite.Run("matches_digits", func() {
		phone, err := kernel.NewPhone("010 1234 5678")
		suite.Require().NoError(err)

		found, err := suite.repository.FindByPhone(ctx, phone)

		suite.Require().NoError(err)
		suite.Equal(c.ID(), found.ID())
		suite.Equal("김한과", found.Name())
	})

	suite.Run("includes_trashed", func() {
		suite.Require().NoError(c.MoveToTrash(pgtest.PlacedAt))
		suite.Require().NoError(suite.repository.Update(ctx, c))

		found, err := suite.repository.FindByPhone(ctx, c.Phone())

		suite.Require().NoError(err)
		suite.True(found.IsDeleted())
	})

	suite.Run("unknown_is_not_found", func() {
		phone, err := kernel.NewPhone("010-9999-0000")
		suite.Require().NoError(err)

		_, err = suite.repository.FindByPhone(ctx, phone)

		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsStatistics() {
	ctx := context.Background()
	c := suite.addCustomer("김한과", "010-1234-5678")
	addr, err := kernel.NewAddress("06236", "서울시 강남구 테헤란로 1", "")
	suite.Require().NoError(err)

	c.RecordOrder("김한과", addr, 42000, pgtest.PlacedAt)
	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(1, loaded.OrderCount())
	suite.Equal(int64(42000), loaded.TotalSpent())
	suite.Require().NotNil(loaded.LastOrderDate())
	suite.Require().NotNil(loaded.Address())
	suite.Equal("06236", loaded.Address().PostalCode())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestRememberAddress_UpsertsOnSameAddress() {
	ctx := context.Background()
	c := suite.addCustomer("김한과", "010-1234-5678")
	addr, err := kernel.NewAddress("06236", "서울시 강남구 테헤란로 1", "101호")
	suite.Require().NoError(err)
	moved, err := kernel.NewAddress("06236", "서울시 강남구 테헤란로 1", "202호")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.RememberAddress(ctx, customer.AddressEntry{
		CustomerID: c.ID(), Address: addr, LastUsedAt: pgtest.PlacedAt,
	}))
	later := pgtest.PlacedAt.Add(24 * time.Hour)
	suite.Require().NoError(suite.repository.RememberAddress(ctx, customer.AddressEntry{
		CustomerID: c.ID(), Address: moved, LastUsedAt: later,
	}))

	var rows []customerrepo.AddressDTO
	suite.Require().NoError(suite.pg.DB.Where("customer_id = ?", c.ID()).Find(&rows).Error)
	suite.Require().Len(rows, 1)
	suite.Equal("202호", rows[0].Address2)
	suite.True(rows[0].LastUsedAt.Equal(later))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	suite.Run("active_customer_is_conflict", func() {
		c := suite.addCustomer("김한과", "010-1111-2222")

		suite.ErrorIs(suite.repository.Delete(ctx, c.ID()), errs.ErrConflict)
	})

	suite.Run("trashed_customer_is_purged_with_addresses", func() {
		c := suite.addCustomer("이약과", "010-3333-4444")
		addr, err := kernel.NewAddress("", "부산시 해운대구 1", "")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.RememberAddress(ctx, customer.AddressEntry{
			CustomerID: c.ID(), Address: addr, LastUsedAt: pgtest.PlacedAt,
		}))
		suite.Require().NoError(c.MoveToTrash(pgtest.PlacedAt))
		suite.Require().NoError(suite.repository.Update(ctx, c))

		suite.Require().NoError(suite.repository.Delete(ctx, c.ID()))

		_, err = suite.repository.Get(ctx, c.ID())
		suite.ErrorIs(err, errs.ErrObjectNotFound)
		var count int64
		suite.Require().NoError(suite.pg.DB.Model(&customerrepo.AddressDTO{}).Where("customer_id = ?", c.ID()).Count(&count).Error)
		suite.Zero(count)
	})

	suite.Run("missing_is_not_found", func() {
		suite.ErrorIs(suite.repository.Delete(ctx, 999), errs.ErrObjectNotFound)
	})
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}

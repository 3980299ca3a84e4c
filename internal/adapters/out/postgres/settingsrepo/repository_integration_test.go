package settingsrepo_test

import (
	"context"
	"testing"

	"snackshop/internal/adapters/out/postgres/pgtest"
	"snackshop/internal/adapters/out/postgres/settingsrepo"
	"snackshop/internal/core/domain/model/settings"

	"github.com/stretchr/testify/suite"
)

type SettingsRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *settingsrepo.GormSettingsRepository
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = settingsrepo.NewGormSettingsRepository(suite.pg.DB)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestLoadPricing_EmptyTable_ReturnsDefaults() {
	p, err := suite.repository.LoadPricing(context.Background())

	suite.Require().NoError(err)
	suite.Equal(settings.DefaultPricing(), p)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestLoadPricing_PartialRows_KeepDefaultsForMissingKeys() {
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO settings (key, value, updated_at) VALUES ('small_box_price', '20000', now())").Error)

	p, err := suite.repository.LoadPricing(context.Background())

	suite.Require().NoError(err)
	suite.Equal(int64(20000), p.SmallBoxPrice)
	suite.Equal(settings.DefaultPricing().LargeBoxPrice, p.LargeBoxPrice)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestSavePricing_Overwrites() {
	ctx := context.Background()
	p := settings.DefaultPricing()
	p.SmallBoxCost = 8000
	suite.Require().NoError(suite.repository.SavePricing(ctx, p))

	p.ShippingFee = 3500
	suite.Require().NoError(suite.repository.SavePricing(ctx, p))

	loaded, err := suite.repository.LoadPricing(ctx)
	suite.Require().NoError(err)
	suite.Equal(p, loaded)

	var rows int64
	suite.Require().NoError(suite.pg.DB.Model(&settingsrepo.SettingDTO{}).Count(&rows).Error)
	suite.Equal(int64(8), rows)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestAdminContact() {
	ctx := context.Background()

	empty, err := suite.repository.LoadAdminContact(ctx)
	suite.Require().NoError(err)
	suite.Equal(settings.AdminContact{}, empty)

	c := settings.AdminContact{Name: "한과당", Phone: "010-1234-5678", BankAccount: "농협 123-45"}
	suite.Require().NoError(suite.repository.SaveAdminContact(ctx, c))
	c.Email = "shop@example.com"
	suite.Require().NoError(suite.repository.SaveAdminContact(ctx, c))

	loaded, err := suite.repository.LoadAdminContact(ctx)
	suite.Require().NoError(err)
	suite.Equal(c, loaded)
}

func TestSettingsRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryIntegrationTestSuite))
}

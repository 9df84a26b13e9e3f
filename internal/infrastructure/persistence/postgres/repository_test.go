package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/persistence/postgres/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	orderRepo    *postgres.OrderRepository
	currencyRepo *postgres.CurrencyRepository
	settingsRepo *postgres.SettingsRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.orderRepo = postgres.NewOrderRepository(suite.testDB.DB)
	suite.currencyRepo = postgres.NewCurrencyRepository(suite.testDB.DB)
	suite.settingsRepo = postgres.NewSettingsRepository(suite.testDB.DB)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *RepositoryTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

// ============================================================================
// ORDERS
// ============================================================================

func (suite *RepositoryTestSuite) Test_Order_FindByID() {
	t := suite.T()
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	id, guid := suite.testDB.InsertOrder(t, 77, "1234.5", domain.StatusPending, createdAt)

	order, err := suite.orderRepo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, order.ID)
	assert.Equal(t, int64(77), order.CustomerID)
	assert.Equal(t, guid, order.OrderGUID)
	assert.True(t, decimal.RequireFromString("1234.50").Equal(order.Total))
	assert.Equal(t, domain.StatusPending, order.PaymentStatus)
	assert.True(t, createdAt.Equal(order.CreatedAt))
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
}

func (suite *RepositoryTestSuite) Test_Order_NotFound() {
	t := suite.T()

	_, err := suite.orderRepo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, application.ErrOrderNotFound)
}

// ============================================================================
// CURRENCIES
// ============================================================================

func (suite *RepositoryTestSuite) Test_Currency_FindByID() {
	t := suite.T()
	id := suite.testDB.InsertCurrency(t, "RUB", "Russian Ruble")

	currency, err := suite.currencyRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "RUB", currency.Code)
	assert.Equal(t, "Russian Ruble", currency.Name)
}

func (suite *RepositoryTestSuite) Test_Currency_NotFound() {
	t := suite.T()

	_, err := suite.currencyRepo.FindByID(context.Background(), 12)
	assert.ErrorIs(t, err, application.ErrCurrencyNotFound)
}

// ============================================================================
// SETTINGS
// ============================================================================

func (suite *RepositoryTestSuite) Test_Settings_Lifecycle() {
	t := suite.T()
	ctx := context.Background()

	_, err := suite.settingsRepo.Get(ctx)
	require.ErrorIs(t, err, application.ErrSettingsNotFound)

	settings := domain.DefaultSettings()
	settings.MntID = "12345"
	settings.Hashcode = "secret"
	settings.PaymentURL = "https://demo.moneta.ru/assistant.htm"
	settings.AdditionalFee = decimal.RequireFromString("2.75")
	settings.AdditionalFeePercentage = true
	require.NoError(t, suite.settingsRepo.Save(ctx, &settings))

	stored, err := suite.settingsRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12345", stored.MntID)
	assert.Equal(t, "secret", stored.Hashcode)
	assert.True(t, stored.TestMode)
	assert.True(t, decimal.RequireFromString("2.75").Equal(stored.AdditionalFee))
	assert.True(t, stored.AdditionalFeePercentage)
	assert.Equal(t, domain.SchemeMD5, stored.SignatureScheme)

	settings.TestMode = false
	settings.SignatureScheme = domain.SchemeHMACSHA256
	require.NoError(t, suite.settingsRepo.Save(ctx, &settings))

	stored, err = suite.settingsRepo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored.TestMode)
	assert.Equal(t, domain.SchemeHMACSHA256, stored.SignatureScheme)

	var rows int
	require.NoError(t, suite.testDB.DB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM gateway_settings").Scan(&rows))
	assert.Equal(t, 1, rows)

	require.NoError(t, suite.settingsRepo.Delete(ctx))
	assert.ErrorIs(t, suite.settingsRepo.Delete(ctx), application.ErrSettingsNotFound)

	_, err = suite.settingsRepo.Get(ctx)
	assert.ErrorIs(t, err, application.ErrSettingsNotFound)
}

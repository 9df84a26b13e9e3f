package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/application/mocks"
	"github.com/DanielPopoola/moneta-checkout/internal/application/services"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pricingMock struct {
	mock.Mock
}

func (m *pricingMock) Subtotal(ctx context.Context, cart domain.Cart) (decimal.Decimal, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func feeSettings(fee string, percentage bool) *domain.GatewaySettings {
	s := installedSettings()
	s.AdditionalFee = decimal.RequireFromString(fee)
	s.AdditionalFeePercentage = percentage
	return s
}

func TestFeeService_AdditionalHandlingFee(t *testing.T) {
	cart := domain.Cart{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("300")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("400")},
	}

	tests := []struct {
		name          string
		settings      *domain.GatewaySettings
		cart          domain.Cart
		expected      string
		expectPricing bool
	}{
		{
			name:     "fixed fee ignores cart",
			settings: feeSettings("15", false),
			cart:     cart,
			expected: "15",
		},
		{
			name:     "fixed fee for empty cart",
			settings: feeSettings("15", false),
			cart:     domain.Cart{},
			expected: "15",
		},
		{
			name:          "percentage of subtotal",
			settings:      feeSettings("5", true),
			cart:          cart,
			expected:      "50",
			expectPricing: true,
		},
		{
			name:          "percentage of empty cart",
			settings:      feeSettings("5", true),
			cart:          nil,
			expected:      "0",
			expectPricing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := &mocks.MockSubtotalCalculator{}
			svc := services.NewFeeService(mocks.NewMockSettingsRepository(tt.settings), calc, discardLogger())

			fee, err := svc.AdditionalHandlingFee(context.Background(), tt.cart)
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.expected).Equal(fee), "got %s", fee)
			assert.Equal(t, tt.expectPricing, calc.Calls > 0)
		})
	}
}

func TestFeeService_DoesNotMutateCart(t *testing.T) {
	cart := domain.Cart{{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("10.10")}}
	snapshot := append(domain.Cart(nil), cart...)

	svc := services.NewFeeService(mocks.NewMockSettingsRepository(feeSettings("10", true)), &mocks.MockSubtotalCalculator{}, discardLogger())

	fee, err := svc.AdditionalHandlingFee(context.Background(), cart)
	require.NoError(t, err)
	assert.Equal(t, "3.03", fee.StringFixed(2))
	assert.Equal(t, snapshot, cart)
}

func TestFeeService_NotInstalled(t *testing.T) {
	svc := services.NewFeeService(mocks.NewMockSettingsRepository(nil), &mocks.MockSubtotalCalculator{}, discardLogger())

	_, err := svc.AdditionalHandlingFee(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrSettingsNotFound)
}

func TestFeeService_HidePaymentMethod(t *testing.T) {
	svc := services.NewFeeService(mocks.NewMockSettingsRepository(nil), &mocks.MockSubtotalCalculator{}, discardLogger())

	assert.False(t, svc.HidePaymentMethod(context.Background(), nil))
	assert.False(t, svc.HidePaymentMethod(context.Background(), domain.Cart{{ProductID: 1, Quantity: 1}}))
}

func TestFeeService_PricingFailure(t *testing.T) {
	ctx := context.Background()
	cart := domain.Cart{{ProductID: 7, Quantity: 1, UnitPrice: decimal.RequireFromString("99")}}
	pricingErr := errors.New("price list unavailable")

	pricing := &pricingMock{}
	pricing.On("Subtotal", ctx, cart).Return(decimal.Zero, pricingErr).Once()

	svc := services.NewFeeService(mocks.NewMockSettingsRepository(feeSettings("5", true)), pricing, discardLogger())

	_, err := svc.AdditionalHandlingFee(ctx, cart)
	require.Error(t, err)
	assert.ErrorIs(t, err, pricingErr)
	pricing.AssertExpectations(t)
}

func TestFeeService_FixedFeeSkipsPricing(t *testing.T) {
	pricing := &pricingMock{}
	svc := services.NewFeeService(mocks.NewMockSettingsRepository(feeSettings("12.5", false)), pricing, discardLogger())

	fee, err := svc.AdditionalHandlingFee(context.Background(), domain.Cart{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "12.50", fee.StringFixed(2))
	pricing.AssertNotCalled(t, "Subtotal", mock.Anything, mock.Anything)
}

func TestFeeService_NegativePriceIsInvalidInput(t *testing.T) {
	svc := services.NewFeeService(mocks.NewMockSettingsRepository(feeSettings("5", true)), pricing.NewCartSubtotal(), discardLogger())

	_, err := svc.AdditionalHandlingFee(context.Background(), domain.Cart{
		{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("-10")},
	})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
	assert.ErrorIs(t, err, domain.ErrInvalidCartLine)
	assert.Equal(t, 400, application.ToHTTPStatus(err))
	assert.Equal(t, application.CategoryClientError, application.CategorizeError(err))
}

package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/moneta-checkout/internal/application/services"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodService_UnsupportedOperations(t *testing.T) {
	svc := services.NewPaymentMethodService(discardLogger())
	ctx := context.Background()

	tests := []struct {
		name   string
		result domain.OperationResult
		reason string
	}{
		{"capture", svc.Capture(ctx, "pay-1"), "Capture method not supported"},
		{"full refund", svc.Refund(ctx, "pay-1", decimal.RequireFromString("100"), false), "Refund method not supported"},
		{"partial refund", svc.Refund(ctx, "pay-1", decimal.RequireFromString("10"), true), "Refund method not supported"},
		{"void", svc.Void(ctx, "pay-1"), "Void method not supported"},
		{"recurring", svc.ProcessRecurringPayment(ctx, "ord-1"), "Recurring payment not supported"},
		{"cancel recurring", svc.CancelRecurringPayment(ctx, "ord-1"), "Recurring payment not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.result.Success())
			assert.Equal(t, []string{tt.reason}, tt.result.Errors)
		})
	}
}

func TestPaymentMethodService_PartialRefundOperation(t *testing.T) {
	svc := services.NewPaymentMethodService(discardLogger())

	full := svc.Refund(context.Background(), "pay-1", decimal.RequireFromString("5"), false)
	partial := svc.Refund(context.Background(), "pay-1", decimal.RequireFromString("5"), true)

	assert.Equal(t, domain.OperationRefund, full.Operation)
	assert.Equal(t, domain.OperationPartialRefund, partial.Operation)
}

func TestPaymentMethodService_ProcessPayment(t *testing.T) {
	svc := services.NewPaymentMethodService(discardLogger())

	result := svc.ProcessPayment(context.Background(), 1)

	assert.True(t, result.Success())
	assert.Equal(t, domain.StatusPending, result.NewPaymentStatus)
}

func TestPaymentMethodService_PaymentInfo(t *testing.T) {
	info := services.NewPaymentMethodService(discardLogger()).PaymentInfo()

	assert.Equal(t, domain.PaymentMethodRedirection, info.PaymentMethodType)
	assert.Equal(t, domain.RecurringNotSupported, info.RecurringPaymentType)
	assert.False(t, info.SkipPaymentInfo)
	assert.Equal(t, "For payment you will be redirected to the website MONETA.RU", info.RedirectionTip)
}

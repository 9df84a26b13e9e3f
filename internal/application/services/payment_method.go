package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentInfo describes how the checkout presents the payment method
type PaymentInfo struct {
	PaymentMethodType    domain.PaymentMethodType
	RecurringPaymentType domain.RecurringPaymentType
	SkipPaymentInfo      bool
	RedirectionTip       string
}

// PaymentMethodService answers the payment operations the checkout may invoke.
// Only the initial payment and the redirect are offered; every other operation
// returns a failed result with a fixed reason.
type PaymentMethodService struct {
	logger *slog.Logger
}

func NewPaymentMethodService(logger *slog.Logger) *PaymentMethodService {
	return &PaymentMethodService{logger: logger}
}

func (s *PaymentMethodService) ProcessPayment(_ context.Context, orderID int64) domain.OperationResult {
	result := domain.ProcessPayment()
	s.logger.Info("payment accepted pending redirect", "order_id", orderID, "status", result.NewPaymentStatus)
	return result
}

func (s *PaymentMethodService) Capture(_ context.Context, paymentID string) domain.OperationResult {
	return s.reject(domain.OperationCapture, paymentID)
}

func (s *PaymentMethodService) Refund(_ context.Context, paymentID string, amount decimal.Decimal, partial bool) domain.OperationResult {
	op := domain.OperationRefund
	if partial {
		op = domain.OperationPartialRefund
	}
	s.logger.Debug("refund requested", "payment_id", paymentID, "amount", amount.String())
	return s.reject(op, paymentID)
}

func (s *PaymentMethodService) Void(_ context.Context, paymentID string) domain.OperationResult {
	return s.reject(domain.OperationVoid, paymentID)
}

func (s *PaymentMethodService) ProcessRecurringPayment(_ context.Context, orderID string) domain.OperationResult {
	return s.reject(domain.OperationRecurringPayment, orderID)
}

func (s *PaymentMethodService) CancelRecurringPayment(_ context.Context, orderID string) domain.OperationResult {
	return s.reject(domain.OperationCancelRecurringPayment, orderID)
}

func (s *PaymentMethodService) Capabilities() []domain.Capability {
	return domain.Capabilities()
}

func (s *PaymentMethodService) PaymentInfo() PaymentInfo {
	return PaymentInfo{
		PaymentMethodType:    domain.PaymentMethodRedirection,
		RecurringPaymentType: domain.RecurringNotSupported,
		SkipPaymentInfo:      domain.Supports(domain.OperationSkipPaymentInfo),
		RedirectionTip:       domain.RedirectionTip,
	}
}

func (s *PaymentMethodService) reject(op domain.Operation, ref string) domain.OperationResult {
	result := domain.Unsupported(op)
	s.logger.Info("unsupported payment operation requested",
		"operation", op,
		"reference", ref,
		"reason", result.Errors[0],
	)
	return result
}

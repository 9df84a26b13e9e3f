package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// RedirectService builds the signed request the customer's browser posts to
// the gateway, both after checkout and when the customer retries.
type RedirectService struct {
	orders            application.OrderRepository
	currencies        application.CurrencyRepository
	settings          application.SettingsRepository
	signers           application.SignerFactory
	primaryCurrencyID int64
	now               func() time.Time
	logger            *slog.Logger
}

func NewRedirectService(
	orders application.OrderRepository,
	currencies application.CurrencyRepository,
	settings application.SettingsRepository,
	signers application.SignerFactory,
	primaryCurrencyID int64,
	logger *slog.Logger,
) *RedirectService {
	return &RedirectService{
		orders:            orders,
		currencies:        currencies,
		settings:          settings,
		signers:           signers,
		primaryCurrencyID: primaryCurrencyID,
		now:               time.Now,
		logger:            logger,
	}
}

// WithClock replaces the time source used by the retry policy.
func (s *RedirectService) WithClock(now func() time.Time) *RedirectService {
	s.now = now
	return s
}

// PostProcessPayment builds the redirect request for a freshly placed order.
func (s *RedirectService) PostProcessPayment(ctx context.Context, orderID int64) (*domain.RedirectRequest, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	req, err := s.build(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info("redirect request built",
		"order_id", order.ID,
		"transaction_id", req.TransactionID,
		"test_mode", req.TestMode,
	)
	return req, nil
}

// RePostProcessPayment builds a fresh redirect request for a customer who came
// back without paying. The retry policy must allow it.
func (s *RedirectService) RePostProcessPayment(ctx context.Context, orderID int64) (*domain.RedirectRequest, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanRetryPayment(order, s.now()) {
		s.logger.Warn("payment retry rejected",
			"order_id", order.ID,
			"created_at", order.CreatedAt,
		)
		return nil, domain.NewRetryNotAllowedError(order.ID)
	}

	req, err := s.build(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info("redirect request rebuilt for retry",
		"order_id", order.ID,
		"transaction_id", req.TransactionID,
	)
	return req, nil
}

// CanRePostProcessPayment reports whether the customer may retry payment now.
func (s *RedirectService) CanRePostProcessPayment(ctx context.Context, orderID int64) (bool, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	return domain.CanRetryPayment(order, s.now()), nil
}

func (s *RedirectService) loadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			return nil, application.NewNotFoundError("order", err)
		}
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}
	return order, nil
}

func (s *RedirectService) build(ctx context.Context, order *domain.Order) (*domain.RedirectRequest, error) {
	if order.IsPaid() {
		return nil, domain.NewInvalidOrderStateError("order is already paid")
	}
	if err := order.CanTransitionTo(domain.StatusPendingRedirect); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, application.ErrSettingsNotFound) {
			return nil, application.NewNotInstalledError()
		}
		return nil, fmt.Errorf("load gateway settings: %w", err)
	}

	currency, err := s.currencies.FindByID(ctx, s.primaryCurrencyID)
	if err != nil {
		s.logger.Error("primary store currency could not be resolved",
			"currency_id", s.primaryCurrencyID,
			"error", err,
		)
		return nil, domain.NewCurrencyResolutionError(s.primaryCurrencyID, err)
	}

	signer, err := s.signers(settings.SignatureScheme)
	if err != nil {
		return nil, err
	}

	return domain.BuildRedirectRequest(order, *settings, currency.Code, signer)
}

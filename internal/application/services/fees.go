package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

type FeeService struct {
	settings  application.SettingsRepository
	subtotals application.SubtotalCalculator
	logger    *slog.Logger
}

func NewFeeService(
	settings application.SettingsRepository,
	subtotals application.SubtotalCalculator,
	logger *slog.Logger,
) *FeeService {
	return &FeeService{
		settings:  settings,
		subtotals: subtotals,
		logger:    logger,
	}
}

// AdditionalHandlingFee returns the surcharge for paying cart with this method.
// The subtotal is only computed when the fee is a percentage.
func (s *FeeService) AdditionalHandlingFee(ctx context.Context, cart domain.Cart) (decimal.Decimal, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, application.ErrSettingsNotFound) {
			return decimal.Zero, application.NewNotInstalledError()
		}
		return decimal.Zero, fmt.Errorf("load gateway settings: %w", err)
	}

	subtotal := decimal.Zero
	if settings.AdditionalFeePercentage {
		subtotal, err = s.subtotals.Subtotal(ctx, cart)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCartLine) {
				return decimal.Zero, application.NewInvalidInputError(err)
			}
			return decimal.Zero, fmt.Errorf("calculate cart subtotal: %w", err)
		}
	}

	fee := domain.ComputeAdditionalFee(subtotal, settings.AdditionalFee, settings.AdditionalFeePercentage)
	s.logger.Debug("additional handling fee computed",
		"items", len(cart),
		"percentage", settings.AdditionalFeePercentage,
		"fee", fee.String(),
	)
	return fee, nil
}

// HidePaymentMethod reports whether the method should be hidden for cart.
// The gateway accepts any cart.
func (s *FeeService) HidePaymentMethod(_ context.Context, _ domain.Cart) bool {
	return false
}

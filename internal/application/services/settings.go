package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// SettingsService manages the lifecycle of the gateway settings record.
type SettingsService struct {
	repo      application.SettingsRepository
	signers   application.SignerFactory
	bootstrap domain.GatewaySettings
	logger    *slog.Logger
}

// NewSettingsService creates the service. bootstrap is what Install saves.
func NewSettingsService(
	repo application.SettingsRepository,
	signers application.SignerFactory,
	bootstrap domain.GatewaySettings,
	logger *slog.Logger,
) *SettingsService {
	return &SettingsService{
		repo:      repo,
		signers:   signers,
		bootstrap: bootstrap,
		logger:    logger,
	}
}

// Install saves the bootstrap settings unless the method is already installed.
func (s *SettingsService) Install(ctx context.Context) (*domain.GatewaySettings, error) {
	existing, err := s.repo.Get(ctx)
	if err == nil {
		s.logger.Info("payment method already installed")
		return existing, nil
	}
	if !errors.Is(err, application.ErrSettingsNotFound) {
		return nil, fmt.Errorf("load gateway settings: %w", err)
	}

	settings := s.bootstrap
	if err := s.validate(settings); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("save gateway settings: %w", err)
	}

	s.logger.Info("payment method installed",
		"test_mode", settings.TestMode,
		"signature_scheme", settings.SignatureScheme,
	)
	return &settings, nil
}

// Uninstall removes the settings. Uninstalling twice is not an error.
func (s *SettingsService) Uninstall(ctx context.Context) error {
	err := s.repo.Delete(ctx)
	if err != nil && !errors.Is(err, application.ErrSettingsNotFound) {
		return fmt.Errorf("delete gateway settings: %w", err)
	}
	s.logger.Info("payment method uninstalled")
	return nil
}

func (s *SettingsService) Get(ctx context.Context) (*domain.GatewaySettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, application.ErrSettingsNotFound) {
			return nil, application.NewNotInstalledError()
		}
		return nil, fmt.Errorf("load gateway settings: %w", err)
	}
	return settings, nil
}

// Update replaces the stored settings with an edited configuration.
// An empty hashcode keeps the stored secret.
func (s *SettingsService) Update(ctx context.Context, settings domain.GatewaySettings) (*domain.GatewaySettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings.Hashcode == "" {
		settings.Hashcode = current.Hashcode
	}
	if settings.SignatureScheme == "" {
		settings.SignatureScheme = current.SignatureScheme
	}
	if err := s.validate(settings); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("save gateway settings: %w", err)
	}

	s.logger.Info("gateway settings updated",
		"test_mode", settings.TestMode,
		"fee_percentage", settings.AdditionalFeePercentage,
	)
	return &settings, nil
}

// validate checks what can be stored. Credentials may still be empty; they are
// only required when a redirect is built.
func (s *SettingsService) validate(settings domain.GatewaySettings) error {
	if settings.PaymentURL == "" {
		return application.NewInvalidInputError(domain.NewMissingRequiredFieldError("payment URL"))
	}
	u, err := url.Parse(settings.PaymentURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return application.NewInvalidInputError(fmt.Errorf("payment URL %q is not absolute", settings.PaymentURL))
	}
	if settings.AdditionalFee.IsNegative() {
		return application.NewInvalidInputError(errors.New("additional fee must not be negative"))
	}
	if _, err := s.signers(settings.SignatureScheme); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}

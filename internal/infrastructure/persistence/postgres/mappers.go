package postgres

import (
	"fmt"
	"strings"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainOrder: maps db model to domain entity
func toDomainOrder(m OrderModel) (*domain.Order, error) {
	total, err := decimal.NewFromString(m.Total)
	if err != nil {
		return nil, fmt.Errorf("order %d has malformed total %q: %w", m.ID, m.Total, err)
	}
	return domain.Reconstitute(
		m.ID,
		m.CustomerID,
		m.OrderGUID,
		total,
		m.CreatedAt,
		domain.PaymentStatus(m.PaymentStatus),
	), nil
}

func toDomainCurrency(m CurrencyModel) *domain.Currency {
	return &domain.Currency{
		ID:   m.ID,
		Code: strings.TrimSpace(m.Code),
		Name: m.Name,
	}
}

func toDomainSettings(m SettingsModel) (*domain.GatewaySettings, error) {
	fee, err := decimal.NewFromString(m.AdditionalFee)
	if err != nil {
		return nil, fmt.Errorf("malformed additional fee %q: %w", m.AdditionalFee, err)
	}
	return &domain.GatewaySettings{
		MntID:                   m.MntID,
		TestMode:                m.TestMode,
		Hashcode:                m.Hashcode,
		AdditionalFee:           fee,
		AdditionalFeePercentage: m.AdditionalFeePercentage,
		PaymentURL:              m.PaymentURL,
		SignatureScheme:         domain.SignatureScheme(m.SignatureScheme),
	}, nil
}

// toSettingsModel: maps domain settings to db model
func toSettingsModel(s *domain.GatewaySettings) SettingsModel {
	scheme := s.SignatureScheme
	if scheme == "" {
		scheme = domain.SchemeMD5
	}
	return SettingsModel{
		MntID:                   strings.TrimSpace(s.MntID),
		Hashcode:                s.Hashcode,
		TestMode:                s.TestMode,
		AdditionalFee:           s.AdditionalFee.String(),
		AdditionalFeePercentage: s.AdditionalFeePercentage,
		PaymentURL:              s.PaymentURL,
		SignatureScheme:         string(scheme),
	}
}

package config

import (
	"fmt"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// GatewaySettings converts the bootstrap section into the settings saved on install
func (c MonetaConfig) GatewaySettings() (domain.GatewaySettings, error) {
	settings := domain.DefaultSettings()
	settings.MntID = c.MntID
	settings.Hashcode = c.Hashcode
	settings.TestMode = c.TestMode
	settings.PaymentURL = c.PaymentURL
	settings.AdditionalFeePercentage = c.AdditionalFeePercentage

	if c.SignatureScheme != "" {
		settings.SignatureScheme = domain.SignatureScheme(c.SignatureScheme)
	}
	if c.AdditionalFee != "" {
		fee, err := decimal.NewFromString(c.AdditionalFee)
		if err != nil {
			return domain.GatewaySettings{}, fmt.Errorf("moneta.additional_fee: %w", err)
		}
		settings.AdditionalFee = fee
	}
	return settings, nil
}

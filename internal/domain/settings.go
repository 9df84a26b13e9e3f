package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SignatureScheme names how MNT_SIGNATURE is computed
type SignatureScheme string

const (
	SchemeMD5        SignatureScheme = "md5"
	SchemeHMACSHA256 SignatureScheme = "hmac-sha256"
)

// GatewaySettings is the merchant configuration of the payment method.
// It is created on install and deleted on uninstall.
type GatewaySettings struct {
	MntID                   string
	TestMode                bool
	Hashcode                string
	AdditionalFee           decimal.Decimal
	AdditionalFeePercentage bool
	PaymentURL              string
	SignatureScheme         SignatureScheme
}

// DefaultSettings are the settings saved when the payment method is installed
func DefaultSettings() GatewaySettings {
	return GatewaySettings{
		TestMode:        true,
		AdditionalFee:   decimal.Zero,
		SignatureScheme: SchemeMD5,
	}
}

// ValidateCredentials checks the fields needed to sign a redirect request
func (s GatewaySettings) ValidateCredentials() error {
	if strings.TrimSpace(s.MntID) == "" {
		return NewConfigurationError("store identifier")
	}
	if s.Hashcode == "" {
		return NewConfigurationError("hashcode")
	}
	return nil
}

package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrSettingsNotFound = errors.New("gateway settings not found")
)

// OrderRepository reads orders owned by the store.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
}

// CurrencyRepository resolves store currencies by id.
type CurrencyRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Currency, error)
}

// SettingsRepository persists the single gateway settings record.
// Get returns ErrSettingsNotFound before install and after uninstall.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GatewaySettings, error)
	Save(ctx context.Context, settings *domain.GatewaySettings) error
	Delete(ctx context.Context) error
}

// SubtotalCalculator prices a cart without modifying it.
type SubtotalCalculator interface {
	Subtotal(ctx context.Context, cart domain.Cart) (decimal.Decimal, error)
}

// SignerFactory returns the signer for a configured scheme.
type SignerFactory func(scheme domain.SignatureScheme) (domain.Signer, error)

package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is an entry of the store currency registry
type Currency struct {
	ID   int64
	Code string
	Name string
}

// CartItem is a shopping cart line. Prices are per unit.
type CartItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Cart is read only to the payment method
type Cart []CartItem

// FormatAmount renders an amount the way the gateway expects it in MNT_AMOUNT:
// two decimals, '.' separator, no grouping.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

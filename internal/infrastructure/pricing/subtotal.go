// Package pricing computes cart totals for the fee policy.
package pricing

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// CartSubtotal sums unit price times quantity over the cart lines.
type CartSubtotal struct{}

func NewCartSubtotal() *CartSubtotal {
	return &CartSubtotal{}
}

func (c *CartSubtotal) Subtotal(_ context.Context, cart domain.Cart) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range cart {
		if item.Quantity < 0 {
			return decimal.Zero, domain.NewInvalidCartLineError(i, fmt.Sprintf("quantity %d is negative", item.Quantity))
		}
		if item.UnitPrice.IsNegative() {
			return decimal.Zero, domain.NewInvalidCartLineError(i, fmt.Sprintf("unit price %s is negative", item.UnitPrice))
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

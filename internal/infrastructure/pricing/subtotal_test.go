package pricing

import (
	"context"
	"testing"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSubtotal(t *testing.T) {
	calc := NewCartSubtotal()

	tests := []struct {
		name     string
		cart     domain.Cart
		expected string
	}{
		{"empty cart", nil, "0"},
		{"single line", domain.Cart{{ProductID: 1, Quantity: 4, UnitPrice: decimal.RequireFromString("2.25")}}, "9"},
		{
			"several lines",
			domain.Cart{
				{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("0.10")},
				{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("0.20")},
			},
			"0.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Subtotal(context.Background(), tt.cart)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestCartSubtotal_RejectsNegativeLines(t *testing.T) {
	calc := NewCartSubtotal()

	_, err := calc.Subtotal(context.Background(), domain.Cart{{ProductID: 1, Quantity: -1, UnitPrice: decimal.RequireFromString("1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidCartLine)

	_, err = calc.Subtotal(context.Background(), domain.Cart{
		{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("5")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("-1")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCartLine)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidCartLine))
	assert.Contains(t, err.Error(), "cart line 1")
}

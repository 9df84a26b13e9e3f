package domain_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanRetryPayment(t *testing.T) {
	order := createTestOrder(t, "10")
	placed := order.CreatedAt

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"immediately after placement", 0, false},
		{"just under the grace period", 5*time.Second - time.Nanosecond, false},
		{"exactly the grace period", 5 * time.Second, true},
		{"well after placement", time.Hour, true},
		{"clock behind creation time", -time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanRetryPayment(order, placed.Add(tt.elapsed)))
		})
	}
}

func TestComputeAdditionalFee(t *testing.T) {
	t.Run("fixed fee ignores the subtotal", func(t *testing.T) {
		fee := domain.ComputeAdditionalFee(decimal.NewFromInt(1000), decimal.RequireFromString("15.50"), false)
		assert.True(t, fee.Equal(decimal.RequireFromString("15.50")))
	})

	t.Run("fixed fee applies to an empty cart", func(t *testing.T) {
		fee := domain.ComputeAdditionalFee(decimal.Zero, decimal.NewFromInt(3), false)
		assert.True(t, fee.Equal(decimal.NewFromInt(3)))
	})

	t.Run("percentage of subtotal", func(t *testing.T) {
		fee := domain.ComputeAdditionalFee(decimal.NewFromInt(1000), decimal.NewFromInt(5), true)
		assert.True(t, fee.Equal(decimal.NewFromInt(50)), fee.String())
	})

	t.Run("fractional percentage", func(t *testing.T) {
		fee := domain.ComputeAdditionalFee(decimal.RequireFromString("80.00"), decimal.RequireFromString("2.5"), true)
		assert.Equal(t, "2.00", domain.FormatAmount(fee))
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "250.00", domain.FormatAmount(decimal.NewFromInt(250)))
	assert.Equal(t, "1000000.10", domain.FormatAmount(decimal.RequireFromString("1000000.1")))
	assert.Equal(t, "0.01", domain.FormatAmount(decimal.RequireFromString("0.005")))
}

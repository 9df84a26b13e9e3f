package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RetryGracePeriod is how long after placement an order must wait before its
// redirect may be posted again.
const RetryGracePeriod = 5 * time.Second

var hundred = decimal.NewFromInt(100)

// CanRetryPayment reports whether the customer may re-post the redirect for an
// order that was placed but not paid.
func CanRetryPayment(order *Order, now time.Time) bool {
	return now.Sub(order.CreatedAt) >= RetryGracePeriod
}

// ComputeAdditionalFee returns the handling fee for a cart. With usePercentage the
// fee is feeAmount percent of subtotal, otherwise feeAmount itself.
func ComputeAdditionalFee(subtotal, feeAmount decimal.Decimal, usePercentage bool) decimal.Decimal {
	if !usePercentage {
		return feeAmount
	}
	return subtotal.Mul(feeAmount).Div(hundred)
}

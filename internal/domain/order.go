// Package domain encodes the order read model and the redirect payment rules
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents where an order is in its redirect payment attempt
type PaymentStatus string

const (
	StatusPending         PaymentStatus = "PENDING"
	StatusPendingRedirect PaymentStatus = "PENDING_REDIRECT"
	StatusPaid            PaymentStatus = "PAID"
	StatusFailed          PaymentStatus = "FAILED"
)

// Order is the store's order as seen by the payment method. It is owned by the
// order management system and never written by this service.
type Order struct {
	ID            int64
	CustomerID    int64
	OrderGUID     uuid.UUID
	Total         decimal.Decimal
	CreatedAt     time.Time
	PaymentStatus PaymentStatus
}

// TransactionID is the gateway transaction reference for the order.
// The same order always maps to the same reference.
func (o *Order) TransactionID() string {
	return o.OrderGUID.String()
}

func (o *Order) IsPaid() bool {
	return o.PaymentStatus == StatusPaid
}

// CanTransitionTo reports whether the payment status may move to target.
// A re-post keeps an order awaiting the gateway in PENDING_REDIRECT.
func (o *Order) CanTransitionTo(target PaymentStatus) error {
	switch o.PaymentStatus {
	case StatusPending:
		return o.allow(target, StatusPendingRedirect)
	case StatusPendingRedirect:
		return o.allow(target, StatusPendingRedirect, StatusPaid, StatusFailed)
	case StatusFailed:
		return o.allow(target, StatusPendingRedirect)
	}
	return NewInvalidTransitionError(o.PaymentStatus, target)
}

func (o *Order) allow(target PaymentStatus, allowed ...PaymentStatus) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(o.PaymentStatus, target)
}

// Reconstitute - Special constructor for loading from DB
func Reconstitute(
	id, customerID int64,
	orderGUID uuid.UUID,
	total decimal.Decimal,
	createdAt time.Time,
	status PaymentStatus,
) *Order {
	return &Order{
		ID:            id,
		CustomerID:    customerID,
		OrderGUID:     orderGUID,
		Total:         total,
		CreatedAt:     createdAt.UTC(),
		PaymentStatus: status,
	}
}

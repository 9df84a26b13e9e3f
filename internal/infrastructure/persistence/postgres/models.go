package postgres

import (
	"time"

	"github.com/google/uuid"
)

// Decimal columns are read as text and parsed so no precision is lost.

type OrderModel struct {
	ID            int64
	CustomerID    int64
	OrderGUID     uuid.UUID
	Total         string
	PaymentStatus string
	CreatedAt     time.Time
}

type CurrencyModel struct {
	ID   int64
	Code string
	Name string
}

type SettingsModel struct {
	MntID                   string
	Hashcode                string
	TestMode                bool
	AdditionalFee           string
	AdditionalFeePercentage bool
	PaymentURL              string
	SignatureScheme         string
	UpdatedAt               time.Time
}

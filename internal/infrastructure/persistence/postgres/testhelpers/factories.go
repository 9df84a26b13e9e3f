package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// InsertCurrency adds a store currency and returns its id
func (td *TestDatabase) InsertCurrency(t *testing.T, code, name string) int64 {
	var id int64
	err := td.DB.Pool.QueryRow(context.Background(),
		`INSERT INTO currencies (code, name) VALUES ($1, $2) RETURNING id`,
		code, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertOrder places an order the way the store would and returns its id
func (td *TestDatabase) InsertOrder(t *testing.T, customerID int64, total string, status domain.PaymentStatus, createdAt time.Time) (int64, uuid.UUID) {
	guid := uuid.New()
	var id int64
	err := td.DB.Pool.QueryRow(context.Background(),
		`INSERT INTO orders (customer_id, order_guid, order_total, payment_status, created_at)
		 VALUES ($1, $2, $3::numeric, $4, $5) RETURNING id`,
		customerID, guid, total, string(status), createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id, guid
}

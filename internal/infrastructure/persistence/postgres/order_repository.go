package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

// OrderRepository reads the orders table. Orders are written by the store.
type OrderRepository struct {
	db Executor
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db.Pool}
}

// FindByID retrieves an order
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, order_guid, order_total::text, payment_status, created_at
		FROM orders WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	return scanOrder(row)
}

// scanOrder converts a database row into a domain Order.
// Returns application.ErrOrderNotFound if the row doesn't exist.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var m OrderModel
	err := row.Scan(&m.ID, &m.CustomerID, &m.OrderGUID, &m.Total, &m.PaymentStatus, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return toDomainOrder(m)
}

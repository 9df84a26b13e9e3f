package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CurrencyRepository struct {
	db Executor
}

func NewCurrencyRepository(db *DB) *CurrencyRepository {
	return &CurrencyRepository{db: db.Pool}
}

func (r *CurrencyRepository) FindByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT id, code, name FROM currencies WHERE id = $1`

	var m CurrencyModel
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Code, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to scan currency: %w", err)
	}
	return toDomainCurrency(m), nil
}

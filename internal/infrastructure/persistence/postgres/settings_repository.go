package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SettingsRepository stores the gateway settings in a single-row table.
type SettingsRepository struct {
	db Executor
}

func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db.Pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.GatewaySettings, error) {
	query := `
		SELECT mnt_id, hashcode, test_mode, additional_fee::text, additional_fee_percentage,
		       payment_url, signature_scheme, updated_at
		FROM gateway_settings WHERE id = 1
	`

	var m SettingsModel
	err := r.db.QueryRow(ctx, query).Scan(
		&m.MntID, &m.Hashcode, &m.TestMode, &m.AdditionalFee, &m.AdditionalFeePercentage,
		&m.PaymentURL, &m.SignatureScheme, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to scan gateway settings: %w", err)
	}
	return toDomainSettings(m)
}

// Save inserts the settings row or replaces it.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.GatewaySettings) error {
	query := `
		INSERT INTO gateway_settings (
			id, mnt_id, hashcode, test_mode, additional_fee, additional_fee_percentage,
			payment_url, signature_scheme, updated_at
		) VALUES (1, $1, $2, $3, $4::numeric, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			mnt_id = EXCLUDED.mnt_id,
			hashcode = EXCLUDED.hashcode,
			test_mode = EXCLUDED.test_mode,
			additional_fee = EXCLUDED.additional_fee,
			additional_fee_percentage = EXCLUDED.additional_fee_percentage,
			payment_url = EXCLUDED.payment_url,
			signature_scheme = EXCLUDED.signature_scheme,
			updated_at = NOW()
	`

	m := toSettingsModel(settings)
	_, err := r.db.Exec(ctx, query,
		m.MntID,
		m.Hashcode,
		m.TestMode,
		m.AdditionalFee,
		m.AdditionalFeePercentage,
		m.PaymentURL,
		m.SignatureScheme,
	)
	if err != nil {
		return fmt.Errorf("failed to save gateway settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Delete(ctx context.Context) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gateway_settings WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to delete gateway settings: %w", err)
	}
	if result.RowsAffected() == 0 {
		return application.ErrSettingsNotFound
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"esim4travel/internal/models"
)

// PromoRepository handles promo code lookups
type PromoRepository struct {
	db *sql.DB
}

// NewPromoRepository creates a new promo code repository
func NewPromoRepository(db *sql.DB) *PromoRepository {
	return &PromoRepository{db: db}
}

// GetByCode returns an active promo code. Inactive and unknown codes are both
// reported as not found so callers cannot probe for disabled codes.
func (r *PromoRepository) GetByCode(code string) (*models.PromoCode, error) {
	promo := &models.PromoCode{}
	err := r.db.QueryRow(`
		SELECT id, code, discount_type, discount_value, min_order_amount,
			usage_limit, times_used, valid_from, valid_until, is_active
		FROM promo_codes WHERE code = $1 AND is_active = TRUE`, code).
		Scan(&promo.ID, &promo.Code, &promo.DiscountType, &promo.DiscountValue,
			&promo.MinOrderAmount, &promo.UsageLimit, &promo.TimesUsed,
			&promo.ValidFrom, &promo.ValidUntil, &promo.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}
	return promo, nil
}

// IncrementUsage bumps the usage counter inside an existing transaction.
func (r *PromoRepository) IncrementUsage(tx *sql.Tx, code string) error {
	if _, err := tx.Exec(
		`UPDATE promo_codes SET times_used = times_used + 1 WHERE code = $1`, code); err != nil {
		return fmt.Errorf("failed to increment promo usage: %w", err)
	}
	return nil
}

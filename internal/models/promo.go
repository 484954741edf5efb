package models

import "time"

// PromoCode is a named discount rule with optional minimum-order, expiry and
// usage-limit gating.
type PromoCode struct {
	ID             int          `json:"id" db:"id"`
	Code           string       `json:"code" db:"code"`
	DiscountType   DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue  float64      `json:"discount_value" db:"discount_value"`
	MinOrderAmount float64      `json:"min_order_amount" db:"min_order_amount"`
	UsageLimit     *int         `json:"usage_limit" db:"usage_limit"`
	TimesUsed      int          `json:"times_used" db:"times_used"`
	ValidFrom      time.Time    `json:"valid_from" db:"valid_from"`
	ValidUntil     *time.Time   `json:"valid_until" db:"valid_until"`
	IsActive       bool         `json:"is_active" db:"is_active"`
}

// IsExpired reports whether the code's validity window has passed. A nil
// ValidUntil means the code never expires.
func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ValidUntil != nil && p.ValidUntil.Before(now)
}

// IsExhausted reports whether the usage limit, if any, has been reached.
func (p *PromoCode) IsExhausted() bool {
	return p.UsageLimit != nil && p.TimesUsed >= *p.UsageLimit
}

// MeetsMinimum reports whether the given subtotal clears the order floor.
func (p *PromoCode) MeetsMinimum(subtotal float64) bool {
	return subtotal >= p.MinOrderAmount
}

// Snapshot copies the discount rule onto a cart. The snapshot survives later
// edits to the promo_codes row.
func (p *PromoCode) Snapshot() *PromoSnapshot {
	return &PromoSnapshot{
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}
}

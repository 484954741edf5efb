package models

import "math"

// DiscountType distinguishes percentage promos from fixed-amount promos.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Cart represents a session-scoped shopping cart
type Cart struct {
	Items     []CartItem     `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	Discount  float64        `json:"discount"`
	Total     float64        `json:"total"`
	PromoCode *PromoSnapshot `json:"promoCode"`
}

// CartItem represents one purchasable line in the cart
type CartItem struct {
	ID                  int64   `json:"id"` // time-based, client-visible
	PackageID           int     `json:"package_id"`
	DestinationName     string  `json:"destination_name"`
	DestinationFlag     string  `json:"destination_flag"`
	PackageName         string  `json:"package_name"`
	PackageDataAmount   string  `json:"package_data_amount"`
	PackageDataUnit     string  `json:"package_data_unit"`
	PackageValidityDays int     `json:"package_validity_days"`
	UnitPrice           float64 `json:"unit_price"`
	Quantity            int     `json:"quantity"`
	TotalPrice          float64 `json:"total_price"`
	IsRegional          bool    `json:"is_regional"`
}

// PromoSnapshot is the discount rule captured on the cart when a promo code
// is applied. It is a copy, not a live reference to the promo_codes row.
type PromoSnapshot struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
}

// NewCart returns an empty cart with zeroed totals.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the index of the item with the given id, or -1.
func (c *Cart) FindItem(itemID int64) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// FindLine returns the index of the line matching both package id and kind,
// or -1. Adding the same package twice must merge into one line, but a regular
// and a regional package can share a numeric id and stay separate lines.
func (c *Cart) FindLine(packageID int, isRegional bool) int {
	for i := range c.Items {
		if c.Items[i].PackageID == packageID && c.Items[i].IsRegional == isRegional {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the line at index i.
func (c *Cart) RemoveItem(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Recalculate rebuilds every derived monetary field from the item list and
// the promo snapshot. Rounding to 2 decimals happens after each step, not
// only at the end, so totals match what each step displays.
func (c *Cart) Recalculate() {
	c.Subtotal = 0
	for i := range c.Items {
		c.Items[i].TotalPrice = round2(c.Items[i].UnitPrice * float64(c.Items[i].Quantity))
		c.Subtotal += c.Items[i].TotalPrice
	}
	c.Subtotal = round2(c.Subtotal)

	if c.PromoCode != nil {
		if c.PromoCode.DiscountType == DiscountPercent {
			c.Discount = round2(c.Subtotal * c.PromoCode.DiscountValue / 100)
		} else {
			c.Discount = round2(c.PromoCode.DiscountValue)
		}
	} else {
		c.Discount = 0
	}

	c.Total = round2(math.Max(0, c.Subtotal-c.Discount))
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

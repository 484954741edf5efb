package models

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
)

// Order represents a persisted order in the system
type Order struct {
	ID            int         `json:"id" db:"id"`
	CustomerID    *int        `json:"customer_id" db:"customer_id"` // nil for guest checkout
	Email         string      `json:"email" db:"email"`
	Status        OrderStatus `json:"status" db:"status"`
	Subtotal      float64     `json:"subtotal" db:"subtotal"`
	Discount      float64     `json:"discount" db:"discount"`
	Total         float64     `json:"total" db:"total"`
	PromoCodeUsed *string     `json:"promo_code_used" db:"promo_code_used"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderCreateRequest carries everything needed to persist an order from a
// finalized cart.
type OrderCreateRequest struct {
	CustomerID *int
	Email      string
	Subtotal   float64
	Discount   float64
	Total      float64
	PromoCode  *string
	Items      []CartItem
}

// Validate checks the request before any row is written.
func (req *OrderCreateRequest) Validate() error {
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}
	if err := ValidateEmail(req.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if req.Subtotal < 0 || req.Discount < 0 || req.Total < 0 {
		return fmt.Errorf("%w: amounts cannot be negative", ErrInvalidInput)
	}
	return nil
}

// OrderItem snapshots one cart line at purchase time. Pricing and naming are
// decoupled from later catalog changes.
type OrderItem struct {
	ID              int     `json:"id" db:"id"`
	OrderID         int     `json:"order_id" db:"order_id"`
	PackageID       int     `json:"package_id" db:"package_id"`
	DestinationName string  `json:"destination_name" db:"destination_name"`
	PackageName     string  `json:"package_name" db:"package_name"`
	Quantity        int     `json:"quantity" db:"quantity"`
	UnitPrice       float64 `json:"unit_price" db:"unit_price"`
	TotalPrice      float64 `json:"total_price" db:"total_price"`
	QRCodeData      string  `json:"qr_code_data" db:"qr_code_data"`
}

// OrderWithItems embeds the item list for detail views
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// ActivationPayload is the structured record encoded into each eSIM QR code.
type ActivationPayload struct {
	OrderID        int    `json:"orderId"`
	PackageID      int    `json:"packageId"`
	Destination    string `json:"destination"`
	Package        string `json:"package"`
	ActivationCode string `json:"activationCode"`
}

// Encode serializes the payload for storage in order_items.qr_code_data.
func (p *ActivationPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode activation payload: %w", err)
	}
	return string(data), nil
}

// DecodeActivationPayload parses a stored qr_code_data string.
func DecodeActivationPayload(data string) (*ActivationPayload, error) {
	var payload ActivationPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode activation payload: %w", err)
	}
	return &payload, nil
}

const activationSuffixLen = 8

// GenerateActivationCode builds an ESIM-{order}-{package}-{suffix} activation
// code. The suffix is 8 base-36 characters from crypto/rand.
func GenerateActivationCode(orderID, packageID int) string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	suffix := make([]byte, activationSuffixLen)
	max := big.NewInt(int64(len(alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fallback to a timestamp-derived character if crypto/rand fails
			suffix[i] = alphabet[time.Now().UnixNano()%int64(len(alphabet))]
			continue
		}
		suffix[i] = alphabet[n.Int64()]
	}

	return fmt.Sprintf("ESIM-%d-%d-%s", orderID, packageID, suffix)
}

// IsPending returns true if the order is pending
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsCompleted returns true if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == OrderCompleted
}

// IsFailed returns true if the order is failed
func (o *Order) IsFailed() bool {
	return o.Status == OrderFailed
}

// IsTerminal reports whether no further status transitions are possible.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderCompleted || o.Status == OrderFailed
}

// ValidateStatus validates an order status value.
func ValidateStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderCompleted, OrderFailed:
		return nil
	default:
		return fmt.Errorf("%w: invalid order status %q", ErrInvalidInput, status)
	}
}

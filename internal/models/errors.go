package models

import "errors"

// Common errors used throughout the application
var (
	ErrRegionNotFound          = errors.New("region not found")
	ErrDestinationNotFound     = errors.New("destination not found")
	ErrPackageNotFound         = errors.New("package not found")
	ErrRegionalPackageNotFound = errors.New("regional package not found")
	ErrCartNotFound            = errors.New("cart not found")
	ErrCartItemNotFound        = errors.New("item not found in cart")
	ErrOrderNotFound           = errors.New("order not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrPromoNotFound           = errors.New("invalid promo code")
	ErrPromoExpired            = errors.New("promo code has expired")
	ErrPromoLimitReached       = errors.New("promo code usage limit reached")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrDuplicateEmail          = errors.New("email already in use")
	ErrUnauthorized            = errors.New("not authenticated")
	ErrInvalidResetToken       = errors.New("invalid or expired reset token")
)

// MinimumNotMetError is returned when a promo code's minimum order amount
// exceeds the cart subtotal. It carries the floor so the handler can echo it.
type MinimumNotMetError struct {
	MinOrderAmount float64
}

func (e *MinimumNotMetError) Error() string {
	return "minimum order amount not met"
}

// IsMinimumNotMet reports whether err is a MinimumNotMetError.
func IsMinimumNotMet(err error) (*MinimumNotMetError, bool) {
	var minErr *MinimumNotMetError
	if errors.As(err, &minErr) {
		return minErr, true
	}
	return nil, false
}

package models

import (
	"errors"
	"fmt"
	"strings"
)

// PackageKind selects which catalog table an add-to-cart request targets.
type PackageKind string

const (
	PackageRegular  PackageKind = "regular"
	PackageRegional PackageKind = "regional"
)

// AddItemRequest is the body of POST /api/cart/items
type AddItemRequest struct {
	PackageID int         `json:"packageId"`
	Quantity  int         `json:"quantity"`
	Type      PackageKind `json:"type"`
}

// Validate normalizes defaults and checks the request.
func (r *AddItemRequest) Validate() error {
	if r.PackageID <= 0 {
		return errors.New("packageId is required")
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 0 {
		return errors.New("quantity must be positive")
	}
	if r.Type == "" {
		r.Type = PackageRegular
	}
	if r.Type != PackageRegular && r.Type != PackageRegional {
		return fmt.Errorf("unknown package type %q", r.Type)
	}
	return nil
}

// UpdateItemRequest is the body of PUT /api/cart/items/{id}
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyPromoRequest is the body of POST /api/cart/promo-code
type ApplyPromoRequest struct {
	Code string `json:"code"`
}

func (r *ApplyPromoRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("code is required")
	}
	return nil
}

// CheckoutRequest is the body of POST /api/orders. PaymentMethod is accepted
// for interface compatibility only; payment is mocked.
type CheckoutRequest struct {
	Email         string `json:"email"`
	PaymentMethod string `json:"paymentMethod"`
}

func (r *CheckoutRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return nil
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return ValidatePassword(r.Password)
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/customers/me
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first name and last name are required")
	}
	if err := ValidateName(r.FirstName, "first name"); err != nil {
		return err
	}
	return ValidateName(r.LastName, "last name")
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	if r.Email == "" || r.Token == "" || r.NewPassword == "" {
		return errors.New("email, token, and new password are required")
	}
	return ValidatePassword(r.NewPassword)
}

// SupportTicketRequest is the body of POST /api/support/tickets
type SupportTicketRequest struct {
	Email    string `json:"email"`
	OrderID  *int   `json:"orderId"`
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

func (r *SupportTicketRequest) Validate() error {
	if r.Email == "" || r.Category == "" || r.Message == "" {
		return errors.New("email, category, and message are required")
	}
	if r.Subject == "" {
		r.Subject = "Support Request"
	}
	return nil
}

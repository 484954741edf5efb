package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var customerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Customer represents a registered storefront account
type Customer struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
}

// ValidateEmail checks an email address for the storefront's accepted format.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}
	if !customerEmailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// ValidateName checks a profile name field.
func ValidateName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(field + " is required")
	}
	if len(name) > 255 {
		return errors.New(field + " must be less than 255 characters")
	}
	return nil
}

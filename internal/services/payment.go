package services

import (
	"fmt"
	"time"
)

// MockPaymentService authorizes every payment. It exists to make explicit
// that the storefront has no real gateway: orders reach "completed" without
// any charge happening anywhere.
type MockPaymentService struct{}

// NewMockPaymentService creates the mock gateway
func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

// Authorize always succeeds and returns a synthetic payment reference.
func (s *MockPaymentService) Authorize(email string, amount float64, method string) (string, error) {
	return fmt.Sprintf("MOCK-%d", time.Now().UnixNano()), nil
}

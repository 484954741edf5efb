package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"esim4travel/internal/models"
)

const (
	bcryptCost    = 10
	resetTokenTTL = 15 * time.Minute
)

// AuthService handles customer registration, login and password resets.
type AuthService struct {
	customerRepo CustomerRepository

	// Reset tokens are held in process memory with an expiry; the storefront
	// has no mailer, so the handler echoes them outside production.
	mu          sync.Mutex
	resetTokens map[string]resetToken
	done        chan struct{}
}

type resetToken struct {
	token      string
	customerID int
	expiresAt  time.Time
}

// NewAuthService creates a new auth service and starts its token sweep.
func NewAuthService(customerRepo CustomerRepository) *AuthService {
	s := &AuthService{
		customerRepo: customerRepo,
		resetTokens:  make(map[string]resetToken),
		done:         make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Close stops the token sweep goroutine.
func (s *AuthService) Close() {
	close(s.done)
}

// Register creates a customer account with a bcrypt password hash.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.customerRepo.Create(strings.TrimSpace(req.Email), string(hash), req.FirstName, req.LastName)
}

// Login verifies credentials and records the login time. Unknown emails and
// wrong passwords return the same error.
func (s *AuthService) Login(email, password string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(email)
	if errors.Is(err, models.ErrCustomerNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := s.customerRepo.TouchLastLogin(customer.ID); err != nil {
		log.Printf("warning: failed to record login for customer %d: %v", customer.ID, err)
	}
	return customer, nil
}

// GetCustomer returns the account for an authenticated session.
func (s *AuthService) GetCustomer(id int) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

// UpdateProfile changes the customer's name fields and returns the updated
// account.
func (s *AuthService) UpdateProfile(id int, req *models.UpdateProfileRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}
	if err := s.customerRepo.UpdateProfile(id, req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	return s.customerRepo.GetByID(id)
}

// ForgotPassword issues a 6-digit reset token for the account, if one exists.
// The empty string return for unknown emails lets the handler answer
// identically either way, preventing email enumeration.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	customer, err := s.customerRepo.GetByEmail(email)
	if errors.Is(err, models.ErrCustomerNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	token, err := generateResetToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.resetTokens[strings.ToLower(email)] = resetToken{
		token:      token,
		customerID: customer.ID,
		expiresAt:  time.Now().Add(resetTokenTTL),
	}
	s.mu.Unlock()

	return token, nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(req *models.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	key := strings.ToLower(req.Email)

	s.mu.Lock()
	entry, ok := s.resetTokens[key]
	if ok && time.Now().After(entry.expiresAt) {
		delete(s.resetTokens, key)
		ok = false
	}
	if ok && entry.token != req.Token {
		s.mu.Unlock()
		return models.ErrInvalidResetToken
	}
	if ok {
		delete(s.resetTokens, key)
	}
	s.mu.Unlock()

	if !ok {
		return models.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.customerRepo.UpdatePassword(entry.customerID, string(hash))
}

// generateResetToken builds a 6-digit code from crypto/rand.
func generateResetToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// cleanup drops expired reset tokens periodically.
func (s *AuthService) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for email, entry := range s.resetTokens {
				if now.After(entry.expiresAt) {
					delete(s.resetTokens, email)
				}
			}
			s.mu.Unlock()
		}
	}
}

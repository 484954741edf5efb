package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"esim4travel/internal/models"
)

// CustomerRepository handles customer account persistence
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, email, password_hash, COALESCE(first_name, ''),
	COALESCE(last_name, ''), created_at, last_login`

// Create inserts a new customer account.
func (r *CustomerRepository) Create(email, passwordHash, firstName, lastName string) (*models.Customer, error) {
	customer := &models.Customer{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	err := r.db.QueryRow(`
		INSERT INTO customers (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		email, passwordHash, firstName, lastName).
		Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// GetByEmail returns one customer by email, case-insensitively.
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	customer := &models.Customer{}
	err := r.db.QueryRow(
		`SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = LOWER($1)`,
		strings.TrimSpace(email)).
		Scan(&customer.ID, &customer.Email, &customer.PasswordHash, &customer.FirstName,
			&customer.LastName, &customer.CreatedAt, &customer.LastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// GetByID returns one customer by id.
func (r *CustomerRepository) GetByID(id int) (*models.Customer, error) {
	customer := &models.Customer{}
	err := r.db.QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).
		Scan(&customer.ID, &customer.Email, &customer.PasswordHash, &customer.FirstName,
			&customer.LastName, &customer.CreatedAt, &customer.LastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// TouchLastLogin records a successful login.
func (r *CustomerRepository) TouchLastLogin(id int) error {
	if _, err := r.db.Exec(
		`UPDATE customers SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// UpdateProfile updates the customer's name fields.
func (r *CustomerRepository) UpdateProfile(id int, firstName, lastName string) error {
	if _, err := r.db.Exec(
		`UPDATE customers SET first_name = $1, last_name = $2 WHERE id = $3`,
		strings.TrimSpace(firstName), strings.TrimSpace(lastName), id); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *CustomerRepository) UpdatePassword(id int, passwordHash string) error {
	if _, err := r.db.Exec(
		`UPDATE customers SET password_hash = $1 WHERE id = $2`, passwordHash, id); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"esim4travel/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db        *sql.DB
	promoRepo *PromoRepository
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB, promoRepo *PromoRepository) *OrderRepository {
	return &OrderRepository{db: db, promoRepo: promoRepo}
}

// Create persists an order and one order item per cart line in a single
// transaction, so a failure partway through leaves no partial order behind.
// Orders are written directly in "completed": payment is mocked upstream.
func (r *OrderRepository) Create(req *models.OrderCreateRequest) (*models.Order, []models.OrderItem, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := &models.Order{
		CustomerID:    req.CustomerID,
		Email:         req.Email,
		Status:        models.OrderCompleted,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Total:         req.Total,
		PromoCodeUsed: req.PromoCode,
	}

	err = tx.QueryRow(`
		INSERT INTO orders (customer_id, email, status, subtotal, discount, total, promo_code_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		req.CustomerID, req.Email, models.OrderCompleted,
		req.Subtotal, req.Discount, req.Total, req.PromoCode).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert order: %w", err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	seenCodes := make(map[string]bool, len(req.Items))

	for _, line := range req.Items {
		// Regenerate on the unlikely suffix collision within one order.
		code := models.GenerateActivationCode(order.ID, line.PackageID)
		for i := 0; seenCodes[code] && i < 5; i++ {
			code = models.GenerateActivationCode(order.ID, line.PackageID)
		}
		seenCodes[code] = true

		payload := models.ActivationPayload{
			OrderID:        order.ID,
			PackageID:      line.PackageID,
			Destination:    line.DestinationName,
			Package:        line.PackageName,
			ActivationCode: code,
		}
		qrData, err := payload.Encode()
		if err != nil {
			return nil, nil, err
		}

		item := models.OrderItem{
			OrderID:         order.ID,
			PackageID:       line.PackageID,
			DestinationName: line.DestinationName,
			PackageName:     line.PackageName,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			TotalPrice:      line.TotalPrice,
			QRCodeData:      qrData,
		}

		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, package_id, destination_name, package_name,
				quantity, unit_price, total_price, qr_code_data)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			item.OrderID, item.PackageID, item.DestinationName, item.PackageName,
			item.Quantity, item.UnitPrice, item.TotalPrice, item.QRCodeData).
			Scan(&item.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert order item: %w", err)
		}
		items = append(items, item)
	}

	if req.PromoCode != nil {
		if err := r.promoRepo.IncrementUsage(tx, *req.PromoCode); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return order, items, nil
}

const orderColumns = `id, customer_id, email, status, subtotal, discount, total,
	promo_code_used, created_at, updated_at`

// GetByID returns one order without its items.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.CustomerID, &order.Email, &order.Status, &order.Subtotal,
			&order.Discount, &order.Total, &order.PromoCodeUsed, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetItems returns the items of one order.
func (r *OrderRepository) GetItems(orderID int) ([]models.OrderItem, error) {
	rows, err := r.db.Query(`
		SELECT id, order_id, package_id, destination_name, package_name,
			quantity, unit_price, total_price, COALESCE(qr_code_data, '')
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.PackageID, &item.DestinationName,
			&item.PackageName, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
			&item.QRCodeData); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByCustomer returns a customer's orders, newest first.
func (r *OrderRepository) GetByCustomer(customerID int) ([]*models.Order, error) {
	rows, err := r.db.Query(`
		SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Email, &order.Status,
			&order.Subtotal, &order.Discount, &order.Total, &order.PromoCodeUsed,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

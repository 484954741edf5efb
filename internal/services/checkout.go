package services

import (
	"context"
	"fmt"
	"log"

	"esim4travel/internal/cart"
	"esim4travel/internal/models"
)

// CheckoutService converts a finalized cart into a durable order with one
// activation artifact per line item.
type CheckoutService struct {
	store     cart.Store
	orderRepo OrderRepository
	payment   PaymentService
	qr        *QRService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store cart.Store, orderRepo OrderRepository, payment PaymentService, qr *QRService) *CheckoutService {
	return &CheckoutService{
		store:     store,
		orderRepo: orderRepo,
		payment:   payment,
		qr:        qr,
	}
}

// Validate checks the checkout preconditions without writing anything.
func (s *CheckoutService) Validate(ctx context.Context, sessionID, email string) error {
	if err := models.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return models.ErrEmptyCart
	}
	return nil
}

// PlaceOrder persists an order from the session's cart and clears the cart.
// The order row, its items and the promo counter are written in a single
// transaction; clearing the session cart happens only after commit.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, customerID *int, req *models.CheckoutRequest) (*models.Order, []models.OrderItem, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if c.IsEmpty() {
		return nil, nil, models.ErrEmptyCart
	}

	// Mocked payment. The descriptor is authorized unconditionally and never
	// persisted, so the completed status below implies no real charge.
	if _, err := s.payment.Authorize(req.Email, c.Total, req.PaymentMethod); err != nil {
		return nil, nil, err
	}

	createReq := &models.OrderCreateRequest{
		CustomerID: customerID,
		Email:      req.Email,
		Subtotal:   c.Subtotal,
		Discount:   c.Discount,
		Total:      c.Total,
		Items:      c.Items,
	}
	if c.PromoCode != nil {
		code := c.PromoCode.Code
		createReq.PromoCode = &code
	}

	order, items, err := s.orderRepo.Create(createReq)
	if err != nil {
		return nil, nil, err
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// The order is already committed; a stale cart is an annoyance, not
		// a data loss. Log and move on.
		log.Printf("warning: failed to clear cart for session %s after order %d: %v", sessionID, order.ID, err)
	}

	return order, items, nil
}

// GetOrder returns an order with its items embedded.
func (s *CheckoutService) GetOrder(orderID int) (*models.OrderWithItems, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	return &models.OrderWithItems{Order: *order, Items: items}, nil
}

// OrderQRCode is one scannable activation artifact of an order.
type OrderQRCode struct {
	models.ActivationPayload
	QRCodeImage string `json:"qrCodeImage"`
}

// GetQRCodes renders one QR image per order item, encoding the stored
// activation payload.
func (s *CheckoutService) GetQRCodes(orderID int) ([]OrderQRCode, error) {
	items, err := s.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.ErrOrderNotFound
	}

	codes := make([]OrderQRCode, 0, len(items))
	for _, item := range items {
		payload, err := models.DecodeActivationPayload(item.QRCodeData)
		if err != nil {
			return nil, err
		}
		image, err := s.qr.DataURL(item.QRCodeData)
		if err != nil {
			return nil, err
		}
		codes = append(codes, OrderQRCode{ActivationPayload: *payload, QRCodeImage: image})
	}
	return codes, nil
}

// GetCustomerOrders returns a customer's order history, newest first.
func (s *CheckoutService) GetCustomerOrders(customerID int) ([]*models.Order, error) {
	orders, err := s.orderRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return orders, nil
}

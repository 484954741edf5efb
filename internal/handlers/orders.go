package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"esim4travel/internal/middleware"
	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

// OrderHandler handles checkout and order retrieval
type OrderHandler struct {
	checkoutService *services.CheckoutService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// ValidateCheckout handles POST /api/checkout/validate
func (h *OrderHandler) ValidateCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.checkoutService.Validate(r.Context(), middleware.GetSessionID(r.Context()), req.Email); err != nil {
		serveError(w, err, "Validation failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// PlaceOrder handles POST /api/orders. On success the session cart is empty
// and the response carries the persisted order with its items.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	order, items, err := h.checkoutService.PlaceOrder(ctx, middleware.GetSessionID(ctx), middleware.GetCustomerID(ctx), &req)
	if err != nil {
		serveError(w, err, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"order":      order,
		"orderItems": items,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.checkoutService.GetOrder(orderID)
	if err != nil {
		serveError(w, err, "Failed to fetch order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// GetQRCodes handles GET /api/orders/{id}/qr-code
func (h *OrderHandler) GetQRCodes(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	codes, err := h.checkoutService.GetQRCodes(orderID)
	if err != nil {
		serveError(w, err, "Failed to generate QR code")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"qrCodes": codes})
}

// CustomerOrders handles GET /api/customers/orders for the logged-in account.
func (h *OrderHandler) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.GetCustomerID(r.Context())
	if customerID == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	orders, err := h.checkoutService.GetCustomerOrders(*customerID)
	if err != nil {
		serveError(w, err, "Failed to fetch orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

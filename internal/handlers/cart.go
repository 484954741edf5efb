package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"esim4travel/internal/middleware"
	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

// CartHandler handles the session shopping cart endpoints
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.Get(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		serveError(w, err, "Failed to fetch cart")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), middleware.GetSessionID(r.Context()), &req)
	if err != nil {
		serveError(w, err, "Failed to add item to cart")
		return
	}
	respondJSON(w, http.StatusCreated, cart)
}

// UpdateItem handles PUT /api/cart/items/{id}. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req models.UpdateItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(r.Context(), middleware.GetSessionID(r.Context()), itemID, req.Quantity)
	if err != nil {
		serveError(w, err, "Failed to update cart item")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), middleware.GetSessionID(r.Context()), itemID)
	if err != nil {
		serveError(w, err, "Failed to remove item from cart")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// ApplyPromo handles POST /api/cart/promo-code
func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyPromoRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartService.ApplyPromoCode(r.Context(), middleware.GetSessionID(r.Context()), req.Code)
	if err != nil {
		serveError(w, err, "Failed to apply promo code")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// RemovePromo handles DELETE /api/cart/promo-code
func (h *CartHandler) RemovePromo(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.RemovePromoCode(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		serveError(w, err, "Failed to remove promo code")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

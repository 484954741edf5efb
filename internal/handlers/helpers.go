package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"esim4travel/internal/models"
)

// errorResponse is the JSON body of every 4xx/5xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// clientError maps a domain error onto the API's 4xx vocabulary. It returns
// false for unexpected errors, which callers surface as a generic 500.
func clientError(w http.ResponseWriter, err error) bool {
	if minErr, ok := models.IsMinimumNotMet(err); ok {
		respondError(w, http.StatusBadRequest,
			"Minimum order amount is $"+strconv.FormatFloat(minErr.MinOrderAmount, 'f', -1, 64))
		return true
	}

	switch {
	case errors.Is(err, models.ErrRegionNotFound):
		respondError(w, http.StatusNotFound, "Region not found")
	case errors.Is(err, models.ErrDestinationNotFound):
		respondError(w, http.StatusNotFound, "Destination not found")
	case errors.Is(err, models.ErrPackageNotFound):
		respondError(w, http.StatusNotFound, "Package not found")
	case errors.Is(err, models.ErrRegionalPackageNotFound):
		respondError(w, http.StatusNotFound, "Regional package not found")
	case errors.Is(err, models.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, models.ErrCartItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found in cart")
	case errors.Is(err, models.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, models.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, models.ErrPromoNotFound):
		respondError(w, http.StatusNotFound, "Invalid promo code")
	case errors.Is(err, models.ErrPromoExpired):
		respondError(w, http.StatusBadRequest, "Promo code has expired")
	case errors.Is(err, models.ErrPromoLimitReached):
		respondError(w, http.StatusBadRequest, "Promo code usage limit reached")
	case errors.Is(err, models.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, models.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrDuplicateEmail):
		respondError(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, models.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, models.ErrInvalidResetToken):
		respondError(w, http.StatusBadRequest, "Invalid or expired reset token")
	default:
		return false
	}
	return true
}

// serveError answers a request that failed: mapped 4xx when the error is a
// known domain error, otherwise a logged 500 with a generic message.
func serveError(w http.ResponseWriter, err error, fallback string) {
	if clientError(w, err) {
		return
	}
	log.Printf("%s: %v", fallback, err)
	respondError(w, http.StatusInternalServerError, fallback)
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"esim4travel/internal/middleware"
	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

// AuthHandler handles customer account endpoints
type AuthHandler struct {
	authService *services.AuthService
	store       sessions.Store
	production  bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store sessions.Store, production bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		production:  production,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.authService.Register(&req)
	if err != nil {
		serveError(w, err, "Registration failed")
		return
	}

	if err := h.setCustomerSession(w, r, customer.ID); err != nil {
		serveError(w, err, "Registration failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"customer": customer})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		serveError(w, err, "Login failed")
		return
	}

	if err := h.setCustomerSession(w, r, customer.ID); err != nil {
		serveError(w, err, "Login failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"customer": customer})
}

// Logout handles POST /api/auth/logout. The whole session is destroyed, cart
// included, matching a fresh browser state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.GetCustomerID(r.Context())
	if customerID == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	customer, err := h.authService.GetCustomer(*customerID)
	if err != nil {
		serveError(w, err, "Failed to fetch customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"customer": customer})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is the
// same whether or not the account exists; outside production the token is
// echoed since there is no mailer.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := h.authService.ForgotPassword(req.Email)
	if err != nil {
		serveError(w, err, "Failed to process request")
		return
	}

	response := map[string]string{
		"message": "If an account exists with this email, a reset link has been sent.",
	}
	if token != "" && !h.production {
		response["resetToken"] = token
	}
	respondJSON(w, http.StatusOK, response)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		serveError(w, err, "Failed to reset password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password has been reset successfully"})
}

// UpdateProfile handles PUT /api/customers/me
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.GetCustomerID(r.Context())
	if customerID == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.authService.UpdateProfile(*customerID, &req)
	if err != nil {
		serveError(w, err, "Failed to update customer information")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":        customer.ID,
		"email":     customer.Email,
		"firstName": customer.FirstName,
		"lastName":  customer.LastName,
		"createdAt": customer.CreatedAt,
	})
}

// setCustomerSession binds the customer id to the browser session.
func (h *AuthHandler) setCustomerSession(w http.ResponseWriter, r *http.Request, customerID int) error {
	session, _ := h.store.Get(r, middleware.SessionName)
	session.Values[middleware.SessionKeyCustomer] = customerID
	return session.Save(r, w)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

func newAuthTestRouter(t *testing.T, production bool, middlewares ...func(http.Handler) http.Handler) (*chi.Mux, *services.MockCustomerRepository) {
	t.Helper()

	customerRepo := new(services.MockCustomerRepository)
	authService := services.NewAuthService(customerRepo)
	t.Cleanup(authService.Close)

	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := NewAuthHandler(authService, store, production)

	r := chi.NewRouter()
	for _, m := range middlewares {
		r.Use(m)
	}
	r.Post("/api/auth/register", handler.Register)
	r.Post("/api/auth/login", handler.Login)
	r.Post("/api/auth/logout", handler.Logout)
	r.Get("/api/auth/me", handler.Me)
	r.Post("/api/auth/forgot-password", handler.ForgotPassword)
	r.Post("/api/auth/reset-password", handler.ResetPassword)
	r.Put("/api/customers/me", handler.UpdateProfile)
	return r, customerRepo
}

func TestAuthHandler_Register(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("Create", "new@example.com", mock.AnythingOfType("string"), "Jane", "Doe").
		Return(&models.Customer{ID: 1, Email: "new@example.com", FirstName: "Jane", LastName: "Doe"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"secret123","firstName":"Jane","lastName":"Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Customer models.Customer `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new@example.com", body.Customer.Email)

	// Registration starts an authenticated session.
	assert.NotEmpty(t, rec.Result().Cookies())
	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, models.ErrDuplicateEmail)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"taken@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")
}

func TestAuthHandler_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("GetByEmail", "jane@example.com").Return(&models.Customer{
		ID: 1, Email: "jane@example.com", PasswordHash: string(hash),
	}, nil)
	customerRepo.On("TouchLastLogin", 1).Return(nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("GetByEmail", "ghost@example.com").Return(nil, models.ErrCustomerNotFound)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAuthHandler_Me_RequiresAuth(t *testing.T) {
	router, _ := newAuthTestRouter(t, false)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false, withTestCustomer(1))
	customerRepo.On("GetByID", 1).Return(&models.Customer{ID: 1, Email: "jane@example.com"}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	router, _ := newAuthTestRouter(t, false)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")

	// The session cookie is expired on the way out.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuthHandler_ForgotPassword_EchoesTokenOutsideProduction(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("GetByEmail", "jane@example.com").Return(&models.Customer{ID: 1, Email: "jane@example.com"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/forgot-password", `{"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["resetToken"], 6)
}

func TestAuthHandler_ForgotPassword_HidesTokenInProduction(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, true)
	customerRepo.On("GetByEmail", "jane@example.com").Return(&models.Customer{ID: 1, Email: "jane@example.com"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/forgot-password", `{"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "resetToken")
}

func TestAuthHandler_ForgotPassword_UnknownEmailSameResponse(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false)
	customerRepo.On("GetByEmail", "ghost@example.com").Return(nil, models.ErrCustomerNotFound)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If an account exists")
	assert.NotContains(t, rec.Body.String(), "resetToken")
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, false)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password",
		`{"email":"jane@example.com","token":"123456","newPassword":"newsecret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired reset token")
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	router, customerRepo := newAuthTestRouter(t, false, withTestCustomer(1))
	customerRepo.On("UpdateProfile", 1, "Janet", "Doe").Return(nil)
	customerRepo.On("GetByID", 1).Return(&models.Customer{
		ID: 1, Email: "jane@example.com", FirstName: "Janet", LastName: "Doe",
	}, nil)

	rec := doJSON(t, router, http.MethodPut, "/api/customers/me", `{"firstName":"Janet","lastName":"Doe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The profile response uses camelCase keys.
	assert.Contains(t, rec.Body.String(), `"firstName":"Janet"`)
	assert.Contains(t, rec.Body.String(), `"lastName":"Doe"`)
}

func TestAuthHandler_UpdateProfile_RequiresAuth(t *testing.T) {
	router, _ := newAuthTestRouter(t, false)

	rec := doJSON(t, router, http.MethodPut, "/api/customers/me", `{"firstName":"Janet","lastName":"Doe"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

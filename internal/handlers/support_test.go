package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

func newSupportTestRouter(t *testing.T) (*chi.Mux, *services.MockContentRepository) {
	t.Helper()

	contentRepo := new(services.MockContentRepository)
	handler := NewSupportHandler(contentRepo)

	r := chi.NewRouter()
	r.Get("/api/faq", handler.ListFAQ)
	r.Get("/api/faq/{category}", handler.FAQByCategory)
	r.Post("/api/support/tickets", handler.CreateTicket)
	r.Get("/api/testimonials", handler.Testimonials)
	r.Get("/api/stats", handler.Stats)
	r.Get("/api/installation-guides", handler.InstallationGuides)
	return r, contentRepo
}

func TestSupportHandler_ListFAQ(t *testing.T) {
	router, contentRepo := newSupportTestRouter(t)
	contentRepo.On("GetAllFAQ").Return([]*models.FAQItem{
		{ID: 1, Category: "general", Question: "What is an eSIM?"},
	}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/faq", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What is an eSIM?")
}

func TestSupportHandler_FAQByCategory(t *testing.T) {
	router, contentRepo := newSupportTestRouter(t)
	contentRepo.On("GetFAQByCategory", "installation").Return([]*models.FAQItem{
		{ID: 3, Category: "installation", Question: "How do I install the eSIM?"},
	}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/faq/installation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "How do I install the eSIM?")
}

func TestSupportHandler_CreateTicket(t *testing.T) {
	router, contentRepo := newSupportTestRouter(t)
	contentRepo.On("CreateSupportTicket", mock.MatchedBy(func(req *models.SupportTicketRequest) bool {
		return req.Email == "help@example.com" && req.Subject == "Support Request"
	})).Return(17, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/support/tickets",
		`{"email":"help@example.com","category":"billing","message":"My order is missing"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		TicketID int    `json:"ticketId"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 17, body.TicketID)
}

func TestSupportHandler_CreateTicket_MissingFields(t *testing.T) {
	router, contentRepo := newSupportTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/support/tickets", `{"email":"help@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	contentRepo.AssertNotCalled(t, "CreateSupportTicket", mock.Anything)
}

func TestSupportHandler_Stats(t *testing.T) {
	router, contentRepo := newSupportTestRouter(t)
	contentRepo.On("GetStats").Return(&models.StoreStats{TotalDestinations: 48, TotalOrders: 1234}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "190+", body["destinations"])
	assert.Equal(t, "2M+", body["travelers"])
	assert.Equal(t, float64(48), body["actualDestinations"])
	assert.Equal(t, float64(1234), body["actualOrders"])
}

func TestSupportHandler_InstallationGuides(t *testing.T) {
	router, _ := newSupportTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/installation-guides", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		IOS               models.InstallationGuide `json:"ios"`
		Android           models.InstallationGuide `json:"android"`
		CompatibleDevices []string                 `json:"compatibleDevices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "iPhone Installation Guide", body.IOS.Title)
	assert.NotEmpty(t, body.Android.Steps)
	assert.NotEmpty(t, body.CompatibleDevices)
}

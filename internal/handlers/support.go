package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

// SupportHandler handles FAQ, support tickets and storefront content
type SupportHandler struct {
	content services.ContentRepository
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(content services.ContentRepository) *SupportHandler {
	return &SupportHandler{content: content}
}

// ListFAQ handles GET /api/faq
func (h *SupportHandler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.GetAllFAQ()
	if err != nil {
		serveError(w, err, "Failed to fetch FAQ")
		return
	}
	if items == nil {
		items = []*models.FAQItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// FAQByCategory handles GET /api/faq/{category}
func (h *SupportHandler) FAQByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.GetFAQByCategory(chi.URLParam(r, "category"))
	if err != nil {
		serveError(w, err, "Failed to fetch FAQ")
		return
	}
	if items == nil {
		items = []*models.FAQItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// CreateTicket handles POST /api/support/tickets
func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req models.SupportTicketRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketID, err := h.content.CreateSupportTicket(&req)
	if err != nil {
		serveError(w, err, "Failed to create support ticket")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"ticketId": ticketID,
		"message":  "Support ticket created",
	})
}

// Testimonials handles GET /api/testimonials
func (h *SupportHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.GetFeaturedTestimonials()
	if err != nil {
		serveError(w, err, "Failed to fetch testimonials")
		return
	}
	if testimonials == nil {
		testimonials = []*models.Testimonial{}
	}
	respondJSON(w, http.StatusOK, testimonials)
}

// Stats handles GET /api/stats, blending marketing copy with live counts.
func (h *SupportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.content.GetStats()
	if err != nil {
		serveError(w, err, "Failed to fetch stats")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"destinations":       "190+",
		"travelers":          "2M+",
		"rating":             4.8,
		"support":            "24/7",
		"delivery":           "Instant",
		"actualDestinations": stats.TotalDestinations,
		"actualOrders":       stats.TotalOrders,
	})
}

// InstallationGuides handles GET /api/installation-guides with the static
// per-platform eSIM setup steps.
func (h *SupportHandler) InstallationGuides(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ios": models.InstallationGuide{
			Title: "iPhone Installation Guide",
			Steps: []string{
				"Open the email containing your QR code",
				"Go to Settings > Cellular/Mobile Data",
				"Tap \"Add Cellular Plan\"",
				"Scan the QR code with your camera",
				"Tap \"Add Cellular Plan\" when prompted",
				"Label your plan (e.g., \"Travel eSIM\")",
				"Choose which line to use for cellular data",
				"Your eSIM is now installed and ready to use",
			},
		},
		"android": models.InstallationGuide{
			Title: "Android Installation Guide",
			Steps: []string{
				"Open the email containing your QR code",
				"Go to Settings > Network & Internet > Mobile Network",
				"Tap the + icon to add a network",
				"Select \"Scan carrier QR code\"",
				"Scan the QR code with your camera",
				"Tap \"Download\" to install the eSIM",
				"Enable the eSIM in your settings",
				"Your eSIM is now installed and ready to use",
			},
		},
		"compatibleDevices": []string{
			"iPhone XS, XR and later models",
			"Google Pixel 3 and later",
			"Samsung Galaxy S20 and later",
			"Samsung Galaxy Note 20 and later",
			"iPad Pro (2018 and later)",
			"iPad Air (2019 and later)",
			"iPad Mini (2019 and later)",
		},
	})
}

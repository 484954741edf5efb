package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"esim4travel/internal/middleware"
)

// RouterConfig bundles everything the API router needs.
type RouterConfig struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Orders  *OrderHandler
	Auth    *AuthHandler
	Support *SupportHandler
	Session *middleware.SessionMiddleware
	CORS    middleware.CORSConfig
}

// NewRouter builds the full /api route tree.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(cfg.CORS))
	r.Use(cfg.Session.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Get("/regions", cfg.Catalog.ListRegions)
		r.Get("/regions/{slug}/destinations", cfg.Catalog.RegionDestinations)

		r.Get("/destinations", cfg.Catalog.ListDestinations)
		r.Get("/destinations/popular", cfg.Catalog.PopularDestinations)
		r.Get("/destinations/search", cfg.Catalog.SearchDestinations)
		r.Get("/destinations/{slug}", cfg.Catalog.GetDestination)
		r.Get("/destinations/{slug}/packages", cfg.Catalog.DestinationPackages)

		r.Get("/packages/{id}", cfg.Catalog.GetPackage)
		r.Get("/regional-packages", cfg.Catalog.ListRegionalPackages)
		r.Get("/regional-packages/{slug}", cfg.Catalog.GetRegionalPackage)

		r.Get("/cart", cfg.Cart.Get)
		r.Post("/cart/items", cfg.Cart.AddItem)
		r.Put("/cart/items/{id}", cfg.Cart.UpdateItem)
		r.Delete("/cart/items/{id}", cfg.Cart.RemoveItem)
		r.Post("/cart/promo-code", cfg.Cart.ApplyPromo)
		r.Delete("/cart/promo-code", cfg.Cart.RemovePromo)

		r.Post("/checkout/validate", cfg.Orders.ValidateCheckout)
		r.Post("/orders", cfg.Orders.PlaceOrder)
		r.Get("/orders/{id}", cfg.Orders.GetOrder)
		r.Get("/orders/{id}/qr-code", cfg.Orders.GetQRCodes)

		r.Post("/auth/register", cfg.Auth.Register)
		r.Post("/auth/login", cfg.Auth.Login)
		r.Post("/auth/logout", cfg.Auth.Logout)
		r.Get("/auth/me", cfg.Auth.Me)
		r.Post("/auth/forgot-password", cfg.Auth.ForgotPassword)
		r.Post("/auth/reset-password", cfg.Auth.ResetPassword)
		r.Put("/customers/me", cfg.Auth.UpdateProfile)
		r.Get("/customers/orders", cfg.Orders.CustomerOrders)

		r.Get("/faq", cfg.Support.ListFAQ)
		r.Get("/faq/{category}", cfg.Support.FAQByCategory)
		r.Post("/support/tickets", cfg.Support.CreateTicket)
		r.Get("/installation-guides", cfg.Support.InstallationGuides)
		r.Get("/testimonials", cfg.Support.Testimonials)
		r.Get("/stats", cfg.Support.Stats)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "eSIM4Travel API is running",
	})
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"esim4travel/internal/cart"
	"esim4travel/internal/config"
	"esim4travel/internal/database"
	"esim4travel/internal/handlers"
	"esim4travel/internal/middleware"
	"esim4travel/internal/repositories"
	"esim4travel/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.InitializeSchema(); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}
	log.Println("Database connection established")

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 24 hours
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	// Carts live server-side, keyed by the session id in the cookie. Redis
	// shares them across instances; the memory store fits a single process.
	var cartStore cart.Store
	if cfg.Redis.Addr != "" {
		cartStore = cart.NewRedisStore(cart.NewRedisClient(cfg.Redis.Addr))
		log.Println("Using Redis cart store at", cfg.Redis.Addr)
	} else {
		memStore := cart.NewMemoryStore()
		defer memStore.Close()
		cartStore = memStore
	}

	catalogRepo := repositories.NewCatalogRepository(db.DB)
	promoRepo := repositories.NewPromoRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB, promoRepo)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	contentRepo := repositories.NewContentRepository(db.DB)

	cartService := services.NewCartService(cartStore, catalogRepo, promoRepo)
	checkoutService := services.NewCheckoutService(cartStore, orderRepo,
		services.NewMockPaymentService(), services.NewQRService())
	authService := services.NewAuthService(customerRepo)
	defer authService.Close()

	router := handlers.NewRouter(handlers.RouterConfig{
		Catalog: handlers.NewCatalogHandler(catalogRepo),
		Cart:    handlers.NewCartHandler(cartService),
		Orders:  handlers.NewOrderHandler(checkoutService),
		Auth:    handlers.NewAuthHandler(authService, sessionStore, cfg.IsProduction()),
		Support: handlers.NewSupportHandler(contentRepo),
		Session: middleware.NewSessionMiddleware(sessionStore),
		CORS:    middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigin),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("eSIM4Travel API listening on http://%s%s", cfg.Server.Host, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}

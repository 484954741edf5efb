package services

import (
	"esim4travel/internal/models"
)

// CatalogRepository provides read access to the catalog tables.
type CatalogRepository interface {
	GetAllRegions() ([]*models.Region, error)
	GetRegionBySlug(slug string) (*models.Region, error)
	GetAllDestinations() ([]*models.Destination, error)
	GetPopularDestinations() ([]*models.Destination, error)
	GetDestinationsByRegion(regionID int) ([]*models.Destination, error)
	SearchDestinations(query string) ([]*models.Destination, error)
	GetDestinationBySlug(slug string) (*models.Destination, error)
	GetDestinationByID(id int) (*models.Destination, error)
	GetPackageByID(id int) (*models.Package, error)
	GetPackagesByDestination(destinationID int) ([]*models.Package, error)
	GetAllRegionalPackages() ([]*models.RegionalPackage, error)
	GetRegionalPackageBySlug(slug string) (*models.RegionalPackage, error)
	GetRegionalPackageByID(id int) (*models.RegionalPackage, error)
}

// PromoRepository provides promo code lookups.
type PromoRepository interface {
	GetByCode(code string) (*models.PromoCode, error)
}

// OrderRepository persists orders.
type OrderRepository interface {
	Create(req *models.OrderCreateRequest) (*models.Order, []models.OrderItem, error)
	GetByID(id int) (*models.Order, error)
	GetItems(orderID int) ([]models.OrderItem, error)
	GetByCustomer(customerID int) ([]*models.Order, error)
}

// CustomerRepository persists customer accounts.
type CustomerRepository interface {
	Create(email, passwordHash, firstName, lastName string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	GetByID(id int) (*models.Customer, error)
	TouchLastLogin(id int) error
	UpdateProfile(id int, firstName, lastName string) error
	UpdatePassword(id int, passwordHash string) error
}

// ContentRepository provides FAQ, testimonial, support and stats data.
type ContentRepository interface {
	GetAllFAQ() ([]*models.FAQItem, error)
	GetFAQByCategory(category string) ([]*models.FAQItem, error)
	GetFeaturedTestimonials() ([]*models.Testimonial, error)
	CreateSupportTicket(req *models.SupportTicketRequest) (int, error)
	GetStats() (*models.StoreStats, error)
}

// PaymentService authorizes a payment for an order total. The storefront
// ships only MockPaymentService; there is no real gateway.
type PaymentService interface {
	Authorize(email string, amount float64, method string) (string, error)
}

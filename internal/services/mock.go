package services

import (
	"github.com/stretchr/testify/mock"

	"esim4travel/internal/models"
)

// Testify mocks for the repository interfaces, shared by service and handler
// tests.

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAllRegions() ([]*models.Region, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Region), args.Error(1)
}

func (m *MockCatalogRepository) GetRegionBySlug(slug string) (*models.Region, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Region), args.Error(1)
}

func (m *MockCatalogRepository) GetAllDestinations() ([]*models.Destination, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) GetPopularDestinations() ([]*models.Destination, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) GetDestinationsByRegion(regionID int) ([]*models.Destination, error) {
	args := m.Called(regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) SearchDestinations(query string) ([]*models.Destination, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) GetDestinationBySlug(slug string) (*models.Destination, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) GetDestinationByID(id int) (*models.Destination, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *MockCatalogRepository) GetPackageByID(id int) (*models.Package, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Package), args.Error(1)
}

func (m *MockCatalogRepository) GetPackagesByDestination(destinationID int) ([]*models.Package, error) {
	args := m.Called(destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Package), args.Error(1)
}

func (m *MockCatalogRepository) GetAllRegionalPackages() ([]*models.RegionalPackage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RegionalPackage), args.Error(1)
}

func (m *MockCatalogRepository) GetRegionalPackageBySlug(slug string) (*models.RegionalPackage, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegionalPackage), args.Error(1)
}

func (m *MockCatalogRepository) GetRegionalPackageByID(id int) (*models.RegionalPackage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegionalPackage), args.Error(1)
}

type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) GetByCode(code string) (*models.PromoCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(req *models.OrderCreateRequest) (*models.Order, []models.OrderItem, error) {
	args := m.Called(req)
	var order *models.Order
	var items []models.OrderItem
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}
	if args.Get(1) != nil {
		items = args.Get(1).([]models.OrderItem)
	}
	return order, items, args.Error(2)
}

func (m *MockOrderRepository) GetByID(id int) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetItems(orderID int) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(customerID int) ([]*models.Order, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(email, passwordHash, firstName, lastName string) (*models.Customer, error) {
	args := m.Called(email, passwordHash, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id int) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) TouchLastLogin(id int) error {
	return m.Called(id).Error(0)
}

func (m *MockCustomerRepository) UpdateProfile(id int, firstName, lastName string) error {
	return m.Called(id, firstName, lastName).Error(0)
}

func (m *MockCustomerRepository) UpdatePassword(id int, passwordHash string) error {
	return m.Called(id, passwordHash).Error(0)
}

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetAllFAQ() ([]*models.FAQItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FAQItem), args.Error(1)
}

func (m *MockContentRepository) GetFAQByCategory(category string) ([]*models.FAQItem, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FAQItem), args.Error(1)
}

func (m *MockContentRepository) GetFeaturedTestimonials() ([]*models.Testimonial, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *MockContentRepository) CreateSupportTicket(req *models.SupportTicketRequest) (int, error) {
	args := m.Called(req)
	return args.Int(0), args.Error(1)
}

func (m *MockContentRepository) GetStats() (*models.StoreStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreStats), args.Error(1)
}

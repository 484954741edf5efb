package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esim4travel/internal/cart"
	"esim4travel/internal/models"
)

func newCartServiceForTest(t *testing.T) (*CartService, *MockCatalogRepository, *MockPromoRepository) {
	t.Helper()

	store := cart.NewMemoryStore()
	t.Cleanup(store.Close)

	catalogRepo := new(MockCatalogRepository)
	promoRepo := new(MockPromoRepository)
	return NewCartService(store, catalogRepo, promoRepo), catalogRepo, promoRepo
}

func testPackage() *models.Package {
	return &models.Package{
		ID:            7,
		DestinationID: 3,
		Name:          "5GB / 30 days",
		DataAmount:    "5",
		DataUnit:      "GB",
		ValidityDays:  30,
		PriceUSD:      14.97,
	}
}

func testDestination() *models.Destination {
	return &models.Destination{ID: 3, Name: "Japan", FlagEmoji: "🇯🇵"}
}

func TestCartService_AddItem(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)

	got, err := svc.AddItem(context.Background(), "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	item := got.Items[0]
	assert.NotZero(t, item.ID)
	assert.Equal(t, 7, item.PackageID)
	assert.Equal(t, "Japan", item.DestinationName)
	assert.Equal(t, "🇯🇵", item.DestinationFlag)
	assert.Equal(t, "5GB / 30 days", item.PackageName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 29.94, item.TotalPrice)
	assert.False(t, item.IsRegional)
	assert.Equal(t, 29.94, got.Subtotal)
	assert.Equal(t, 29.94, got.Total)

	catalogRepo.AssertExpectations(t)
}

func TestCartService_AddItem_MergesSamePackage(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 1})
	require.NoError(t, err)

	got, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestCartService_AddItem_Regional(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetRegionalPackageByID", 5).Return(&models.RegionalPackage{
		ID:           5,
		Name:         "Europe 39",
		DataAmount:   "10GB",
		ValidityDays: 30,
		PriceUSD:     29.99,
	}, nil)

	got, err := svc.AddItem(context.Background(), "session-1", &models.AddItemRequest{PackageID: 5, Type: models.PackageRegional})
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	item := got.Items[0]
	assert.True(t, item.IsRegional)
	assert.Equal(t, "Europe 39", item.DestinationName)
	assert.Equal(t, "🌍", item.DestinationFlag)
	assert.Equal(t, "10GB • 30 days", item.PackageName)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddItem_RegularAndRegionalStaySeparate(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	pkg := testPackage()
	pkg.ID = 5
	catalogRepo.On("GetPackageByID", 5).Return(pkg, nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	catalogRepo.On("GetRegionalPackageByID", 5).Return(&models.RegionalPackage{
		ID: 5, Name: "Europe 39", DataAmount: "10GB", ValidityDays: 30, PriceUSD: 29.99,
	}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 5})
	require.NoError(t, err)
	got, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 5, Type: models.PackageRegional})
	require.NoError(t, err)

	assert.Len(t, got.Items, 2)
}

func TestCartService_AddItem_PackageNotFound(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 99).Return(nil, models.ErrPackageNotFound)

	_, err := svc.AddItem(context.Background(), "session-1", &models.AddItemRequest{PackageID: 99})
	assert.ErrorIs(t, err, models.ErrPackageNotFound)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 1})
	require.NoError(t, err)
	itemID := added.Items[0].ID

	got, err := svc.UpdateQuantity(ctx, "session-1", itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Items[0].Quantity)
	assert.Equal(t, 59.88, got.Total)

	// Zero removes the line.
	got, err = svc.UpdateQuantity(ctx, "session-1", itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestCartService_UpdateQuantity_UnknownItem(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	_, err := svc.UpdateQuantity(context.Background(), "session-1", 42, 1)
	assert.ErrorIs(t, err, models.ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, catalogRepo, _ := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	ctx := context.Background()

	added, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7})
	require.NoError(t, err)

	got, err := svc.RemoveItem(ctx, "session-1", added.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartService_ApplyPromoCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	limit := 10

	tests := []struct {
		name         string
		promo        *models.PromoCode
		promoErr     error
		wantErr      error
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:         "percent discount applied",
			promo:        &models.PromoCode{Code: "WELCOME10", DiscountType: models.DiscountPercent, DiscountValue: 10},
			wantDiscount: 2.99,
			wantTotal:    26.95,
		},
		{
			name:         "fixed discount applied",
			promo:        &models.PromoCode{Code: "TRAVEL20", DiscountType: models.DiscountFixed, DiscountValue: 5, MinOrderAmount: 25},
			wantDiscount: 5,
			wantTotal:    24.94,
		},
		{
			name:     "unknown code",
			promoErr: models.ErrPromoNotFound,
			wantErr:  models.ErrPromoNotFound,
		},
		{
			name:    "expired code",
			promo:   &models.PromoCode{Code: "SUMMER2024", DiscountType: models.DiscountPercent, DiscountValue: 15, ValidUntil: &expired},
			wantErr: models.ErrPromoExpired,
		},
		{
			name:    "usage limit reached",
			promo:   &models.PromoCode{Code: "CAPPED", DiscountType: models.DiscountPercent, DiscountValue: 10, UsageLimit: &limit, TimesUsed: 10},
			wantErr: models.ErrPromoLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, catalogRepo, promoRepo := newCartServiceForTest(t)
			svc.now = func() time.Time { return now }
			catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
			catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
			ctx := context.Background()

			_, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 2})
			require.NoError(t, err)

			code := "TEST"
			if tt.promo != nil {
				code = tt.promo.Code
			}
			if tt.promoErr != nil {
				promoRepo.On("GetByCode", code).Return(nil, tt.promoErr)
			} else {
				promoRepo.On("GetByCode", code).Return(tt.promo, nil)
			}

			got, err := svc.ApplyPromoCode(ctx, "session-1", code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				// A rejected promo leaves the stored cart untouched.
				current, getErr := svc.Get(ctx, "session-1")
				require.NoError(t, getErr)
				assert.Nil(t, current.PromoCode)
				assert.Zero(t, current.Discount)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.PromoCode)
			assert.Equal(t, code, got.PromoCode.Code)
			assert.Equal(t, tt.wantDiscount, got.Discount)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestCartService_ApplyPromoCode_MinimumNotMet(t *testing.T) {
	svc, catalogRepo, promoRepo := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	promoRepo.On("GetByCode", "TRAVEL20").Return(&models.PromoCode{
		Code: "TRAVEL20", DiscountType: models.DiscountFixed, DiscountValue: 5, MinOrderAmount: 25,
	}, nil)
	ctx := context.Background()

	// Subtotal 14.97 is below the $25 floor.
	_, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.ApplyPromoCode(ctx, "session-1", "TRAVEL20")
	minErr, ok := models.IsMinimumNotMet(err)
	require.True(t, ok, "expected MinimumNotMetError, got %v", err)
	assert.Equal(t, 25.0, minErr.MinOrderAmount)
}

func TestCartService_ApplyPromoCode_EmptyCart(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	_, err := svc.ApplyPromoCode(context.Background(), "session-1", "WELCOME10")
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCartService_RemovePromoCode(t *testing.T) {
	svc, catalogRepo, promoRepo := newCartServiceForTest(t)
	catalogRepo.On("GetPackageByID", 7).Return(testPackage(), nil)
	catalogRepo.On("GetDestinationByID", 3).Return(testDestination(), nil)
	promoRepo.On("GetByCode", "WELCOME10").Return(&models.PromoCode{
		Code: "WELCOME10", DiscountType: models.DiscountPercent, DiscountValue: 10,
	}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", &models.AddItemRequest{PackageID: 7, Quantity: 2})
	require.NoError(t, err)
	applied, err := svc.ApplyPromoCode(ctx, "session-1", "WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, applied.PromoCode)

	got, err := svc.RemovePromoCode(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, got.PromoCode)
	assert.Zero(t, got.Discount)
	assert.Equal(t, got.Subtotal, got.Total)
}

package services

import (
	"context"
	"fmt"
	"time"

	"esim4travel/internal/cart"
	"esim4travel/internal/models"
)

// CartService keeps session carts consistent with their item lists and any
// applied promo code. Every mutation runs inside the cart store's per-session
// update and ends with a recalculation.
type CartService struct {
	store       cart.Store
	catalogRepo CatalogRepository
	promoRepo   PromoRepository
	now         func() time.Time
}

// NewCartService creates a new cart service
func NewCartService(store cart.Store, catalogRepo CatalogRepository, promoRepo PromoRepository) *CartService {
	return &CartService{
		store:       store,
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		now:         time.Now,
	}
}

// Get returns the session's cart, empty if none exists yet.
func (s *CartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

// AddItem looks up the package and either merges into an existing line with
// the same (package, kind) pair or appends a new one at the current catalog
// price.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	newItem, err := s.buildItem(req)
	if err != nil {
		return nil, err
	}

	return s.store.Update(ctx, sessionID, func(c *models.Cart) error {
		if i := c.FindLine(req.PackageID, newItem.IsRegional); i >= 0 {
			c.Items[i].Quantity += req.Quantity
		} else {
			newItem.ID = nextItemID(c)
			c.Items = append(c.Items, *newItem)
		}
		c.Recalculate()
		return nil
	})
}

// buildItem snapshots catalog data into a cart line.
func (s *CartService) buildItem(req *models.AddItemRequest) (*models.CartItem, error) {
	if req.Type == models.PackageRegional {
		pkg, err := s.catalogRepo.GetRegionalPackageByID(req.PackageID)
		if err != nil {
			return nil, err
		}
		return &models.CartItem{
			PackageID:           pkg.ID,
			DestinationName:     pkg.Name,
			DestinationFlag:     "🌍",
			PackageName:         fmt.Sprintf("%s • %d days", pkg.DataAmount, pkg.ValidityDays),
			PackageDataAmount:   pkg.DataAmount,
			PackageValidityDays: pkg.ValidityDays,
			UnitPrice:           pkg.PriceUSD,
			Quantity:            req.Quantity,
			IsRegional:          true,
		}, nil
	}

	pkg, err := s.catalogRepo.GetPackageByID(req.PackageID)
	if err != nil {
		return nil, err
	}
	destination, err := s.catalogRepo.GetDestinationByID(pkg.DestinationID)
	if err != nil {
		return nil, err
	}
	return &models.CartItem{
		PackageID:           pkg.ID,
		DestinationName:     destination.Name,
		DestinationFlag:     destination.FlagEmoji,
		PackageName:         pkg.Name,
		PackageDataAmount:   pkg.DataAmount,
		PackageDataUnit:     pkg.DataUnit,
		PackageValidityDays: pkg.ValidityDays,
		UnitPrice:           pkg.PriceUSD,
		Quantity:            req.Quantity,
	}, nil
}

// nextItemID issues a time-based client-visible line id, bumped past any
// existing id so two adds in the same millisecond stay distinct.
func nextItemID(c *models.Cart) int64 {
	id := time.Now().UnixMilli()
	for c.FindItem(id) >= 0 {
		id++
	}
	return id
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) (*models.Cart, error) {
	return s.store.Update(ctx, sessionID, func(c *models.Cart) error {
		i := c.FindItem(itemID)
		if i < 0 {
			return models.ErrCartItemNotFound
		}
		if quantity <= 0 {
			c.RemoveItem(i)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.Recalculate()
		return nil
	})
}

// RemoveItem deletes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID int64) (*models.Cart, error) {
	return s.store.Update(ctx, sessionID, func(c *models.Cart) error {
		i := c.FindItem(itemID)
		if i < 0 {
			return models.ErrCartItemNotFound
		}
		c.RemoveItem(i)
		c.Recalculate()
		return nil
	})
}

// ApplyPromoCode validates the code against the current subtotal and stores a
// snapshot of the discount rule on the cart.
func (s *CartService) ApplyPromoCode(ctx context.Context, sessionID string, code string) (*models.Cart, error) {
	return s.store.Update(ctx, sessionID, func(c *models.Cart) error {
		if c.IsEmpty() {
			return models.ErrEmptyCart
		}

		promo, err := s.promoRepo.GetByCode(code)
		if err != nil {
			return err
		}
		if promo.IsExpired(s.now()) {
			return models.ErrPromoExpired
		}
		if promo.IsExhausted() {
			return models.ErrPromoLimitReached
		}
		if !promo.MeetsMinimum(c.Subtotal) {
			return &models.MinimumNotMetError{MinOrderAmount: promo.MinOrderAmount}
		}

		c.PromoCode = promo.Snapshot()
		c.Recalculate()
		return nil
	})
}

// RemovePromoCode clears any applied promo snapshot.
func (s *CartService) RemovePromoCode(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.store.Update(ctx, sessionID, func(c *models.Cart) error {
		c.PromoCode = nil
		c.Recalculate()
		return nil
	})
}

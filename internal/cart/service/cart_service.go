package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	"github.com/ridloal/agri-storefront/internal/cart/store"
	catalogRepo "github.com/ridloal/agri-storefront/internal/catalog/repository"
	catalogService "github.com/ridloal/agri-storefront/internal/catalog/service"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProductNotPurchasable = errors.New("product is not available for purchase")
)

// StoreProvider hands out the cart store belonging to a session.
type StoreProvider interface {
	Store(sessionID string) *store.Store
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) domain.Snapshot
	AddToCart(ctx context.Context, sessionID string, productID int) (domain.Snapshot, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int) domain.Snapshot
}

type cartServiceImpl struct {
	stores  StoreProvider
	catalog catalogService.CatalogService
}

func NewCartService(stores StoreProvider, catalog catalogService.CatalogService) CartService {
	return &cartServiceImpl{stores: stores, catalog: catalog}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) domain.Snapshot {
	return s.stores.Store(sessionID).Snapshot()
}

// AddToCart resolves productID in the catalog first; the store itself accepts any product.
func (s *cartServiceImpl) AddToCart(ctx context.Context, sessionID string, productID int) (domain.Snapshot, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			return domain.Snapshot{}, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
		}
		logger.Error("AddToCart: catalog lookup failed", err)
		return domain.Snapshot{}, fmt.Errorf("could not look up product %d: %w", productID, err)
	}
	if product.Related {
		return domain.Snapshot{}, fmt.Errorf("%w: id %d", ErrProductNotPurchasable, productID)
	}

	cart := s.stores.Store(sessionID)
	if product.Currency != cart.Currency() {
		return domain.Snapshot{}, fmt.Errorf("%w: id %d is priced in %s, cart totals in %s", ErrProductNotPurchasable, productID, product.Currency, cart.Currency())
	}
	return cart.AddToCart(*product), nil
}

// RemoveFromCart accepts any id; ids not in the cart leave it unchanged.
func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, sessionID string, productID int) domain.Snapshot {
	return s.stores.Store(sessionID).RemoveFromCart(productID)
}

package repository

import (
	"context"
	"errors"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

type ProductRepository interface {
	// ListProducts returns purchasable products in catalog order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// ListRelated returns the related-products strip in catalog order.
	ListRelated(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
}

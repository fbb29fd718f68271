package repository

import (
	"context"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
)

type memoryProductRepository struct {
	products []domain.Product
	byID     map[int]int // product id -> index into products
}

// NewMemoryProductRepository serves a fixed product list. The slice is copied.
func NewMemoryProductRepository(products []domain.Product) ProductRepository {
	r := &memoryProductRepository{
		products: append([]domain.Product(nil), products...),
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

func (r *memoryProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.filter(false), nil
}

func (r *memoryProductRepository) ListRelated(ctx context.Context) ([]domain.Product, error) {
	return r.filter(true), nil
}

func (r *memoryProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[idx]
	return &p, nil
}

func (r *memoryProductRepository) filter(related bool) []domain.Product {
	products := []domain.Product{}
	for _, p := range r.products {
		if p.Related == related {
			products = append(products, p)
		}
	}
	return products
}

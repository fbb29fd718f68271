package service

import (
	"context"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
	"github.com/ridloal/agri-storefront/internal/catalog/repository"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListRelated(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
}

type catalogServiceImpl struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("ListProducts: repository error", err)
		return nil, err
	}
	return products, nil
}

// ListRelated degrades to an empty strip on error; the related products are
// decoration and should not take a page down with them.
func (s *catalogServiceImpl) ListRelated(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListRelated(ctx)
	if err != nil {
		logger.Error("ListRelated: repository error, rendering without related products", err)
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	if productID <= 0 {
		return nil, repository.ErrProductNotFound
	}
	return s.repo.GetProductByID(ctx, productID)
}

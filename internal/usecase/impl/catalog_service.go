// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
	}
}

// ListProducts returns the catalog narrowed and ordered by the criteria.
func (s *catalogService) ListProducts(criteria usecase.ProductCriteria) []entity.Product {
	return filterAndSort(s.catalogRepo.ListProducts(), criteria)
}

// GetProduct returns a single product or ErrProductNotFound.
func (s *catalogService) GetProduct(id int) (entity.Product, error) {
	product, ok := s.catalogRepo.FindProductByID(id)
	if !ok {
		return entity.Product{}, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// Meta returns the filter bounds and option lists for the shop view.
func (s *catalogService) Meta() usecase.CatalogMeta {
	minPrice, maxPrice := s.catalogRepo.PriceRange()

	return usecase.CatalogMeta{
		PriceMin:   minPrice,
		PriceMax:   maxPrice,
		Categories: usecase.CategoryOptions,
		SortKeys:   usecase.SortOptions,
	}
}

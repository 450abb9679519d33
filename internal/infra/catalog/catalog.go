// Package catalog holds the static product catalog. The shop sells a fixed
// assortment; records are validated once at startup and never change.
package catalog

import (
	"math"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/errors"

	"github.com/go-playground/validator/v10"
)

type store struct {
	products []entity.Product
	byID     map[int]entity.Product
	minPrice float64
	maxPrice float64
}

// New validates the built-in catalog and builds the id index and price
// bounds. Validation failures abort startup; a broken catalog is a
// programming error, not a runtime condition.
func New() (repository.CatalogRepository, error) {
	validate := validator.New()

	byID := make(map[int]entity.Product, len(products))
	minPrice := math.Inf(1)
	maxPrice := math.Inf(-1)

	for _, product := range products {
		if err := validate.Struct(product); err != nil {
			return nil, errors.Wrapf(err, "invalid catalog record %d", product.ID)
		}
		if product.Promotion && product.PriceBeforePromotion <= product.Price {
			return nil, errors.Errorf("catalog record %d: promotion without a higher previous price", product.ID)
		}
		if _, exists := byID[product.ID]; exists {
			return nil, errors.Errorf("catalog record %d: duplicate id", product.ID)
		}

		byID[product.ID] = product
		minPrice = math.Min(minPrice, product.Price)
		maxPrice = math.Max(maxPrice, product.Price)
	}

	return &store{
		products: products,
		byID:     byID,
		minPrice: math.Floor(minPrice),
		maxPrice: math.Ceil(maxPrice),
	}, nil
}

// ListProducts returns the full catalog in its canonical order.
func (s *store) ListProducts() []entity.Product {
	snapshot := make([]entity.Product, len(s.products))
	copy(snapshot, s.products)

	return snapshot
}

// FindProductByID returns the product with the given id, if present.
func (s *store) FindProductByID(id int) (entity.Product, bool) {
	product, ok := s.byID[id]

	return product, ok
}

// PriceRange returns floor(min price) and ceil(max price) of the catalog.
func (s *store) PriceRange() (minPrice, maxPrice float64) {
	return s.minPrice, s.maxPrice
}

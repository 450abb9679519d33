// Package repository defines the interfaces for the persistence layer.
package repository

import "herbaciarnia/internal/domain/entity"

// CatalogRepository provides read-only access to the static product catalog.
// The catalog is held in memory and never changes after startup, so the
// accessors take no context and never fail.
type CatalogRepository interface {
	// ListProducts returns the full catalog in its canonical order.
	ListProducts() []entity.Product

	// FindProductByID returns the product with the given id.
	// A miss is reported through the boolean, not an error.
	FindProductByID(id int) (entity.Product, bool)

	// PriceRange returns floor(min price) and ceil(max price) across the
	// catalog, used to seed filter bounds.
	PriceRange() (minPrice, maxPrice float64)
}

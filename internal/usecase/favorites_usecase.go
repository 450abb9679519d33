package usecase

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// FavoritesUsecase owns the favorites set: an insertion-ordered set of
// product snapshots with write-through persistence.
type FavoritesUsecase interface {
	// Add bookmarks the product; adding an already-present id is a no-op.
	Add(ctx context.Context, product entity.Product) error

	// Remove drops the product id from the set; absent ids are a no-op.
	Remove(ctx context.Context, productID int) error

	// Contains reports set membership for the product id.
	Contains(productID int) bool

	// List returns the favorites in insertion order.
	List() []entity.Product
}

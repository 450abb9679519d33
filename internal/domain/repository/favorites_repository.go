package repository

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// FavoritesRepository persists the favorites list with the same
// write-through contract as CartRepository: an invalid stored payload
// resets to an empty set rather than failing.
type FavoritesRepository interface {
	// Load rehydrates the persisted favorites in insertion order.
	Load(ctx context.Context) ([]entity.Product, error)

	// Save persists the full favorites list, replacing the previous state.
	Save(ctx context.Context, products []entity.Product) error
}

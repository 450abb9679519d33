package repository

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// CartRepository is the thin persistence adapter for the cart aggregate.
// The aggregate owns the in-memory state; the repository only loads it on
// startup and writes the full collection through after every mutation.
type CartRepository interface {
	// Load rehydrates the persisted cart. Malformed entries are dropped and
	// an unreadable payload yields an empty cart, never an error.
	Load(ctx context.Context) ([]entity.CartLine, error)

	// Save persists the full cart collection, replacing the previous state.
	Save(ctx context.Context, lines []entity.CartLine) error
}

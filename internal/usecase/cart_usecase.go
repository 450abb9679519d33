package usecase

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// CartUsecase owns the shopping cart aggregate. Every mutating operation
// writes the full collection through to storage before returning.
type CartUsecase interface {
	// Add appends a new line or increments the existing line for the product.
	// Quantities below 1 are rejected with ErrInvalidQuantity.
	Add(ctx context.Context, product entity.Product, quantity int) error

	// Remove deletes the line for the product id; absent ids are a no-op.
	Remove(ctx context.Context, productID int) error

	// SetQuantity replaces the line's quantity. A quantity <= 0 behaves
	// exactly like Remove.
	SetQuantity(ctx context.Context, productID int, quantity int) error

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Lines returns a snapshot of the cart lines in insertion order.
	Lines() []entity.CartLine

	// TotalPrice sums price*quantity over all lines, rounded to two decimals.
	TotalPrice() float64

	// TotalItems sums the line quantities.
	TotalItems() int

	// Contains reports whether a line exists for the product id.
	Contains(productID int) bool

	// GetLine returns the line for the product id, if present.
	GetLine(productID int) (entity.CartLine, bool)
}

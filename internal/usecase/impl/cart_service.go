package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/usecase"

	"go.uber.org/fx"
)

// cartService owns the cart aggregate in memory and writes the full
// collection through to the repository after every mutation. The mutex only
// serializes concurrent HTTP handlers; the logical model stays single-session.
type cartService struct {
	mu       sync.Mutex
	lines    []entity.CartLine
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService creates the cart service and rehydrates the persisted cart.
// A broken persisted payload degrades to an empty cart.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	service := &cartService{
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}

	lines, err := params.CartRepo.Load(context.Background())
	if err != nil {
		params.Logger.Warn("Failed to load persisted cart, starting empty", slog.Any("error", err))
		lines = nil
	}
	service.lines = lines

	return service
}

// Add appends a new line or increments the existing line for the product.
func (s *cartService) Add(ctx context.Context, product entity.Product, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			merged = true

			break
		}
	}
	if !merged {
		s.lines = append(s.lines, entity.CartLine{Product: product, Quantity: quantity})
	}

	return s.persist(ctx)
}

// Remove deletes the line for the product id; absent ids are a no-op.
func (s *cartService) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(productID) {
		return nil
	}

	return s.persist(ctx)
}

// SetQuantity replaces the line's quantity; <= 0 behaves exactly like Remove.
func (s *cartService) SetQuantity(ctx context.Context, productID int, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity

			return s.persist(ctx)
		}
	}

	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	return s.persist(ctx)
}

// Lines returns a snapshot of the cart lines in insertion order.
func (s *cartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entity.CartLine, len(s.lines))
	copy(snapshot, s.lines)

	return snapshot
}

// TotalPrice sums price*quantity over all lines, rounded to two decimals.
func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}

	return math.Round(total*100) / 100
}

// TotalItems sums the line quantities.
func (s *cartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}

	return count
}

// Contains reports whether a line exists for the product id.
func (s *cartService) Contains(productID int) bool {
	_, ok := s.GetLine(productID)

	return ok
}

// GetLine returns the line for the product id, if present.
func (s *cartService) GetLine(productID int) (entity.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line, true
		}
	}

	return entity.CartLine{}, false
}

func (s *cartService) removeLocked(productID int) bool {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)

			return true
		}
	}

	return false
}

// persist writes the full collection through. Callers must hold the mutex.
func (s *cartService) persist(ctx context.Context) error {
	snapshot := make([]entity.CartLine, len(s.lines))
	copy(snapshot, s.lines)

	if err := s.cartRepo.Save(ctx, snapshot); err != nil {
		return domainerrors.NewStorageError(err, "failed to persist cart")
	}

	return nil
}

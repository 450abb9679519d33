package impl

import (
	"context"
	"log/slog"
	"sync"

	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/usecase"

	"go.uber.org/fx"
)

// favoritesService keeps the favorites as an insertion-ordered set of
// product snapshots with the same write-through contract as the cart.
type favoritesService struct {
	mu            sync.Mutex
	products      []entity.Product
	favoritesRepo repository.FavoritesRepository
	logger        *slog.Logger
}

// FavoritesServiceParams holds dependencies for FavoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	FavoritesRepo repository.FavoritesRepository
	Logger        *slog.Logger
}

// NewFavoritesService creates the favorites service and rehydrates the
// persisted list; an invalid payload resets to an empty set.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	service := &favoritesService{
		favoritesRepo: params.FavoritesRepo,
		logger:        params.Logger,
	}

	products, err := params.FavoritesRepo.Load(context.Background())
	if err != nil {
		params.Logger.Warn("Failed to load persisted favorites, starting empty", slog.Any("error", err))
		products = nil
	}
	service.products = products

	return service
}

// Add bookmarks the product; adding an already-present id is a no-op.
func (s *favoritesService) Add(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == product.ID {
			return nil
		}
	}

	s.products = append(s.products, product)

	return s.persist(ctx)
}

// Remove drops the product id from the set; absent ids are a no-op.
func (s *favoritesService) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)

			return s.persist(ctx)
		}
	}

	return nil
}

// Contains reports set membership for the product id.
func (s *favoritesService) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, product := range s.products {
		if product.ID == productID {
			return true
		}
	}

	return false
}

// List returns the favorites in insertion order.
func (s *favoritesService) List() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entity.Product, len(s.products))
	copy(snapshot, s.products)

	return snapshot
}

// persist writes the full list through. Callers must hold the mutex.
func (s *favoritesService) persist(ctx context.Context) error {
	snapshot := make([]entity.Product, len(s.products))
	copy(snapshot, s.products)

	if err := s.favoritesRepo.Save(ctx, snapshot); err != nil {
		return domainerrors.NewStorageError(err, "failed to persist favorites")
	}

	return nil
}

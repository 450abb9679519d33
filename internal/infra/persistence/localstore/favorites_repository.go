package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/errors"
)

// favoritesKey is the storage key the favorites document lives under.
const favoritesKey = "favorites.json"

// favoritesRepository implements the repository.FavoritesRepository interface.
type favoritesRepository struct {
	store *Store
}

// NewFavoritesRepository is the constructor for favoritesRepository.
func NewFavoritesRepository(store *Store) repository.FavoritesRepository {
	return &favoritesRepository{
		store: store,
	}
}

// Load rehydrates the persisted favorites. An invalid payload resets the set
// to empty rather than failing.
func (repo *favoritesRepository) Load(ctx context.Context) ([]entity.Product, error) {
	data, err := repo.store.readKey(ctx, favoritesKey)
	if err != nil || data == nil {
		return nil, err
	}

	var stored []entity.Product
	if err := json.Unmarshal(data, &stored); err != nil {
		repo.store.logger.Warn("Persisted favorites are not valid JSON, resetting",
			slog.Any("error", err))

		return nil, nil
	}

	products := make([]entity.Product, 0, len(stored))
	for _, product := range stored {
		if product.ID <= 0 || product.Name == "" {
			repo.store.logger.Warn("Dropping malformed favorite entry",
				slog.Int("productId", product.ID))

			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// Save persists the full favorites list under the favorites key.
func (repo *favoritesRepository) Save(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "failed to marshal favorites")
	}

	return repo.store.writeKey(ctx, favoritesKey, data)
}

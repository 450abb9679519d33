package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/errors"
)

// cartKey is the storage key the cart document lives under.
const cartKey = "cart.json"

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	store *Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{
		store: store,
	}
}

// Load rehydrates the persisted cart. An unparseable payload resets to an
// empty cart; malformed entries are dropped individually.
func (repo *cartRepository) Load(ctx context.Context) ([]entity.CartLine, error) {
	data, err := repo.store.readKey(ctx, cartKey)
	if err != nil || data == nil {
		return nil, err
	}

	var stored []entity.CartLine
	if err := json.Unmarshal(data, &stored); err != nil {
		repo.store.logger.Warn("Persisted cart is not valid JSON, resetting",
			slog.Any("error", err))

		return nil, nil
	}

	lines := make([]entity.CartLine, 0, len(stored))
	for _, line := range stored {
		if line.Quantity < 1 || line.Product.ID <= 0 || line.Product.Name == "" {
			repo.store.logger.Warn("Dropping malformed cart line",
				slog.Int("productId", line.Product.ID),
				slog.Int("quantity", line.Quantity))

			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Save persists the full cart collection under the cart key.
func (repo *cartRepository) Save(ctx context.Context, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart")
	}

	return repo.store.writeKey(ctx, cartKey, data)
}

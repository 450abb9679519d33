package localstore

import (
	"context"
	"testing"

	"herbaciarnia/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoriteFixture(id int, name string) entity.Product {
	return entity.Product{
		ID:           id,
		Name:         name,
		Price:        24.99,
		Category:     "zielona",
		Description:  "testowa herbata",
		Availability: true,
	}
}

func TestFavoritesRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewFavoritesRepository(store)
	ctx := context.Background()

	products := []entity.Product{
		favoriteFixture(1, "Sencha"),
		favoriteFixture(6, "Matcha"),
	}
	require.NoError(t, repo.Save(ctx, products))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, loaded)
}

func TestFavoritesRepository_Load_MissingKeyReturnsEmpty(t *testing.T) {
	repo := NewFavoritesRepository(newTestStore(t))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFavoritesRepository_Load_CorruptPayloadResets(t *testing.T) {
	store := newTestStore(t)
	repo := NewFavoritesRepository(store)
	ctx := context.Background()

	require.NoError(t, store.writeKey(ctx, favoritesKey, []byte(`{"oops":`)))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFavoritesRepository_Load_DropsMalformedEntries(t *testing.T) {
	store := newTestStore(t)
	repo := NewFavoritesRepository(store)
	ctx := context.Background()

	payload := []byte(`[
		{"id":1,"name":"Sencha","price":24.99},
		{"id":0,"name":"Widmo","price":9.99},
		{"id":3,"name":"","price":9.99}
	]`)
	require.NoError(t, store.writeKey(ctx, favoritesKey, payload))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ID)
}

func TestFavoritesRepository_Save_NilPersistsEmptyArray(t *testing.T) {
	store := newTestStore(t)
	repo := NewFavoritesRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil))

	data, err := store.readKey(ctx, favoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

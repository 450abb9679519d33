package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuiltinCatalogIsValid(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	products := repo.ListProducts()
	require.Len(t, products, 12)

	seen := map[int]struct{}{}
	for _, product := range products {
		_, duplicate := seen[product.ID]
		assert.False(t, duplicate, "catalog ids must be unique")
		seen[product.ID] = struct{}{}

		assert.NotEmpty(t, product.Name)
		assert.Greater(t, product.Price, 0.0)
		if product.Promotion {
			assert.Greater(t, product.PriceBeforePromotion, product.Price)
		}
	}
}

func TestPriceRange(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	minPrice, maxPrice := repo.PriceRange()
	assert.Equal(t, float64(15), minPrice)
	assert.Equal(t, float64(50), maxPrice)
}

func TestFindProductByID(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	product, ok := repo.FindProductByID(6)
	require.True(t, ok)
	assert.Equal(t, "zielona", product.Category)

	_, ok = repo.FindProductByID(999)
	assert.False(t, ok)
}

func TestListProducts_ReturnsSnapshot(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	first := repo.ListProducts()
	first[0].Name = "zmieniona"

	second := repo.ListProducts()
	assert.NotEqual(t, "zmieniona", second[0].Name, "callers must not be able to mutate the catalog")
}

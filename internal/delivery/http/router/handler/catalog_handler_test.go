package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"herbaciarnia/internal/infra/catalog"
	"herbaciarnia/internal/usecase"
	"herbaciarnia/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()

	repo, err := catalog.New()
	require.NoError(t, err)

	return &CatalogHandler{
		catalogUC: impl.NewCatalogService(impl.CatalogServiceParams{CatalogRepo: repo}),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

type productListResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID       int     `json:"id"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
	} `json:"data"`
}

func TestCatalogHandler_ListProducts_CategoryQuery(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?category=zielona&sort=price-asc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body productListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 3)
	for _, product := range body.Data {
		assert.Equal(t, "zielona", product.Category)
	}
	assert.LessOrEqual(t, body.Data[0].Price, body.Data[1].Price)
	assert.LessOrEqual(t, body.Data[1].Price, body.Data[2].Price)
}

func TestCatalogHandler_ListProducts_DefaultsToPopularitySort(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			ID         int     `json:"id"`
			Popularity float64 `json:"popularity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Data, 12)
	assert.Equal(t, 10, body.Data[0].ID, "the most popular tea leads the shop view")
	for i := 1; i < len(body.Data); i++ {
		assert.GreaterOrEqual(t, body.Data[i-1].Popularity, body.Data[i].Popularity,
			"without a sort param the listing is ordered by popularity")
	}
}

func TestCatalogHandler_ListProducts_InvalidPriceBound(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?priceMin=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestCatalogHandler_GetProduct_UnknownID(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_GetMeta(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/meta", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetMeta(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data usecase.CatalogMeta `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(15), body.Data.PriceMin)
	assert.Equal(t, float64(50), body.Data.PriceMax)
	assert.NotEmpty(t, body.Data.Categories)
	assert.NotEmpty(t, body.Data.SortKeys)
}

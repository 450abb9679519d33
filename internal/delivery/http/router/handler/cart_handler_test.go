package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"herbaciarnia/internal/delivery/http/validator"
	"herbaciarnia/internal/infra/catalog"
	"herbaciarnia/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) *CartHandler {
	t.Helper()

	repo, err := catalog.New()
	require.NoError(t, err)

	return &CartHandler{
		cartUC: impl.NewCartService(impl.CartServiceParams{
			CartRepo: &cartRepoStub{},
			Logger:   discardLogger(),
		}),
		catalogUC: impl.NewCatalogService(impl.CatalogServiceParams{CatalogRepo: repo}),
		logger:    discardLogger(),
	}
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type cartViewResponse struct {
	Success bool     `json:"success"`
	Data    CartView `json:"data"`
}

func TestCartHandler_AddItem(t *testing.T) {
	handler := newTestCartHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postJSON(e, "/cart/items", `{"productId":1,"quantity":2}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body cartViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.TotalItems)
	require.Len(t, body.Data.Lines, 1)
	assert.Equal(t, 1, body.Data.Lines[0].Product.ID)
}

func TestCartHandler_AddItem_OmittedQuantityDefaultsToOne(t *testing.T) {
	handler := newTestCartHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postJSON(e, "/cart/items", `{"productId":1}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body cartViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Data.Lines, 1)
	assert.Equal(t, 1, body.Data.Lines[0].Quantity, "an omitted quantity adds a single unit")
}

func TestCartHandler_AddItem_RejectsZeroQuantity(t *testing.T) {
	handler := newTestCartHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postJSON(e, "/cart/items", `{"productId":1,"quantity":0}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	handler := newTestCartHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postJSON(e, "/cart/items", `{"productId":999,"quantity":1}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"herbaciarnia/internal/delivery/http/response"
	"herbaciarnia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles product listing with filter and sort query parameters
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	sortKey := c.QueryParam("sort")
	if sortKey == "" {
		sortKey = usecase.SortPopularityDesc
	}

	criteria := usecase.ProductCriteria{
		SearchText: c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		SortKey:    sortKey,
	}

	if c.QueryParam("promotion") == "true" {
		criteria.OnSaleOnly = true
	}
	if c.QueryParam("available") == "true" {
		criteria.InStockOnly = true
	}

	if raw := c.QueryParam("priceMin"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowa cena minimalna")
		}
		criteria.PriceMin = &min
	}
	if raw := c.QueryParam("priceMax"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowa cena maksymalna")
		}
		criteria.PriceMax = &max
	}

	products := h.catalogUC.ListProducts(criteria)

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles retrieving a single product by id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowy identyfikator produktu")
	}

	product, err := h.catalogUC.GetProduct(id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// GetMeta handles retrieving filter bounds and option lists for the shop view
func (h *CatalogHandler) GetMeta(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Meta(), "")
}

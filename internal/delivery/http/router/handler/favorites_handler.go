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

// FavoritesHandlerParams holds dependencies for FavoritesHandler, injected by Fx.
type FavoritesHandlerParams struct {
	fx.In

	FavoritesUC usecase.FavoritesUsecase
	CatalogUC   usecase.CatalogUsecase
	Logger      *slog.Logger
}

// FavoritesHandler holds dependencies for favorites-related handlers
type FavoritesHandler struct {
	favoritesUC usecase.FavoritesUsecase
	catalogUC   usecase.CatalogUsecase
	logger      *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler
func NewFavoritesHandler(params FavoritesHandlerParams) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUC: params.FavoritesUC,
		catalogUC:   params.CatalogUC,
		logger:      params.Logger,
	}
}

// AddFavoriteRequest represents the request body for bookmarking a product
type AddFavoriteRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

// ListFavorites handles retrieving the favorites in insertion order
func (h *FavoritesHandler) ListFavorites(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.favoritesUC.List(), "")
}

// AddFavorite handles bookmarking a product
func (h *FavoritesHandler) AddFavorite(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane ulubionych")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.GetProduct(req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoritesUC.Add(c.Request().Context(), product); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.favoritesUC.List(), "Dodano do ulubionych")
}

// RemoveFavorite handles dropping a product from the favorites
func (h *FavoritesHandler) RemoveFavorite(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowy identyfikator produktu")
	}

	if err := h.favoritesUC.Remove(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.favoritesUC.List(), "Usunięto z ulubionych")
}

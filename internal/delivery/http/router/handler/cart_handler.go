package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"herbaciarnia/internal/delivery/http/response"
	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddItemRequest represents the request body for adding a cart item.
// Quantity is optional and defaults to a single unit.
type AddItemRequest struct {
	ProductID int  `json:"productId" validate:"required,gt=0"`
	Quantity  *int `json:"quantity" validate:"omitempty,gt=0"`
}

// UpdateItemRequest represents the request body for updating a cart line
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart payload returned to the storefront.
type CartView struct {
	Lines      []entity.CartLine `json:"lines"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// GetCart handles retrieving the current cart with its totals
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane pozycji koszyka")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.GetProduct(req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.cartUC.Add(c.Request().Context(), product, quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Dodano do koszyka")
}

// UpdateItem handles replacing a cart line's quantity
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowy identyfikator produktu")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane pozycji koszyka")
	}

	if err := h.cartUC.SetQuantity(c.Request().Context(), productID, req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Zaktualizowano koszyk")
}

// RemoveItem handles removing a product from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Nieprawidłowy identyfikator produktu")
	}

	if err := h.cartUC.Remove(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Usunięto z koszyka")
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.Clear(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Wyczyszczono koszyk")
}

func (h *CartHandler) cartView() CartView {
	return CartView{
		Lines:      h.cartUC.Lines(),
		TotalItems: h.cartUC.TotalItems(),
		TotalPrice: h.cartUC.TotalPrice(),
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"herbaciarnia/internal/delivery/http/response"
	"herbaciarnia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout and order handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// DeliveryOption pairs a delivery method with its price.
type DeliveryOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CheckoutOptions seeds the checkout form with the offered methods.
type CheckoutOptions struct {
	DeliveryMethods []DeliveryOption `json:"deliveryMethods"`
	PaymentMethods  []usecase.Option `json:"paymentMethods"`
}

// GetOptions handles retrieving the delivery and payment choices for the
// checkout form, with the delivery prices attached
func (h *CheckoutHandler) GetOptions(c echo.Context) error {
	deliveries := make([]DeliveryOption, 0, len(usecase.DeliveryMethodOptions))
	for _, option := range usecase.DeliveryMethodOptions {
		price, ok := h.checkoutUC.DeliveryPrice(option.ID)
		if !ok {
			continue
		}
		deliveries = append(deliveries, DeliveryOption{
			ID:    option.ID,
			Name:  option.Name,
			Price: price,
		})
	}

	return response.Success(c, http.StatusOK, CheckoutOptions{
		DeliveryMethods: deliveries,
		PaymentMethods:  usecase.PaymentMethodOptions,
	}, "")
}

// PlaceOrder handles the checkout form submission
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var form usecase.CheckoutForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane zamówienia")
	}

	if err := c.Validate(&form); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Zamówienie złożone")
}

// GetOrder handles retrieving a placed order by its public number
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	order, err := h.checkoutUC.GetOrder(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetOrderQR handles rendering the order number as a PNG QR code
func (h *CheckoutHandler) GetOrderQR(c echo.Context) error {
	png, err := h.checkoutUC.OrderQR(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

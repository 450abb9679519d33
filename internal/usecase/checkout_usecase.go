package usecase

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// Delivery methods offered at checkout.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
	DeliveryPickup   = "pickup"
)

// Payment methods offered at checkout. No payment is processed; the choice
// is recorded on the order for display only.
const (
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentPayPal   = "paypal"
)

// DeliveryMethodOptions lists the delivery methods rendered by the checkout
// form, in display order.
var DeliveryMethodOptions = []Option{
	{ID: DeliveryStandard, Name: "Kurier"},
	{ID: DeliveryExpress, Name: "Kurier ekspresowy"},
	{ID: DeliveryPickup, Name: "Odbiór osobisty"},
}

// PaymentMethodOptions lists the payment methods rendered by the checkout
// form, in display order.
var PaymentMethodOptions = []Option{
	{ID: PaymentCard, Name: "Karta płatnicza"},
	{ID: PaymentTransfer, Name: "Przelew bankowy"},
	{ID: PaymentPayPal, Name: "PayPal"},
}

// CheckoutForm carries the checkout form fields. Field-level validation
// happens at the delivery layer; business rules (empty cart, known methods)
// are enforced by the use case.
type CheckoutForm struct {
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	DeliveryMethod string `json:"deliveryMethod" validate:"required"`
	PaymentMethod  string `json:"paymentMethod" validate:"required"`
}

// CheckoutUsecase turns the current cart into a placed order.
type CheckoutUsecase interface {
	// PlaceOrder validates the form against business rules, freezes the cart
	// into an order, persists it and clears the cart. The cart must not be
	// empty.
	PlaceOrder(ctx context.Context, form CheckoutForm) (*entity.Order, error)

	// GetOrder retrieves a placed order by its public number.
	GetOrder(ctx context.Context, number string) (*entity.Order, error)

	// OrderQR renders the order number as a PNG QR code for the
	// confirmation page.
	OrderQR(ctx context.Context, number string) ([]byte, error)

	// DeliveryPrice returns the price of a delivery method.
	DeliveryPrice(method string) (float64, bool)
}

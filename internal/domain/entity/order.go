package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// IsValid reports whether the status is one of the known fulfilment states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}

	return false
}

// Order represents a placed (simulated) order. No payment is ever charged;
// the payment method is recorded for display only.
type Order struct {
	ID             uuid.UUID   `json:"id"`
	Number         string      `json:"number"` // Human-facing order number shown on the confirmation page.
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	PostalCode     string      `json:"postalCode"`
	DeliveryMethod string      `json:"deliveryMethod"`
	PaymentMethod  string      `json:"paymentMethod"`
	ItemsPrice     float64     `json:"itemsPrice"`
	DeliveryPrice  float64     `json:"deliveryPrice"`
	TotalPrice     float64     `json:"totalPrice"`
	Status         OrderStatus `json:"status"`
	Lines          []OrderLine `json:"lines"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// OrderLine is a cart line frozen at checkout time.
type OrderLine struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

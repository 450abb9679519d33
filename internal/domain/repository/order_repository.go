package repository

import (
	"context"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order together with its lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByNumber retrieves an order (with lines) by its public number.
	FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error)

	// ListRecentOrders retrieves the most recently created orders.
	ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus updates the fulfilment status of an order.
	UpdateOrderStatus(ctx context.Context, number string, status entity.OrderStatus) error

	// CountOrders returns the total number of orders.
	CountOrders(ctx context.Context) (int64, error)

	// SumRevenue returns the sum of total prices across all orders.
	SumRevenue(ctx context.Context) (float64, error)

	// CountCustomers returns the number of distinct order emails.
	CountCustomers(ctx context.Context) (int64, error)
}

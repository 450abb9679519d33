package usecase

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// DashboardStats summarizes the shop for the admin dashboard.
type DashboardStats struct {
	TotalOrders    int64   `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCustomers int64   `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
	Subscribers    int64   `json:"subscribers"`
}

// Dashboard bundles the stats with the most recent orders.
type Dashboard struct {
	Stats        DashboardStats  `json:"stats"`
	RecentOrders []*entity.Order `json:"recentOrders"`
}

// AdminUsecase backs the admin dashboard.
type AdminUsecase interface {
	// GetDashboard aggregates shop statistics and recent orders.
	GetDashboard(ctx context.Context) (*Dashboard, error)

	// UpdateOrderStatus moves an order to a new fulfilment status.
	UpdateOrderStatus(ctx context.Context, number string, status string) error
}

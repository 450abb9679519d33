package impl

import (
	"context"

	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/errors"
	"herbaciarnia/internal/usecase"

	"go.uber.org/fx"
)

const recentOrdersLimit = 5

type adminService struct {
	orderRepo      repository.OrderRepository
	newsletterRepo repository.NewsletterRepository
	catalogRepo    repository.CatalogRepository
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	NewsletterRepo repository.NewsletterRepository
	CatalogRepo    repository.CatalogRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		orderRepo:      params.OrderRepo,
		newsletterRepo: params.NewsletterRepo,
		catalogRepo:    params.CatalogRepo,
	}
}

// GetDashboard aggregates shop statistics and recent orders.
func (s *adminService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	totalOrders, err := s.orderRepo.CountOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalRevenue, err := s.orderRepo.SumRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	totalCustomers, err := s.orderRepo.CountCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	subscribers, err := s.newsletterRepo.CountSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count newsletter subscriptions")
	}

	recentOrders, err := s.orderRepo.ListRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return &usecase.Dashboard{
		Stats: usecase.DashboardStats{
			TotalOrders:    totalOrders,
			TotalRevenue:   totalRevenue,
			TotalCustomers: totalCustomers,
			TotalProducts:  len(s.catalogRepo.ListProducts()),
			Subscribers:    subscribers,
		},
		RecentOrders: recentOrders,
	}, nil
}

// UpdateOrderStatus moves an order to a new fulfilment status.
func (s *adminService) UpdateOrderStatus(ctx context.Context, number string, status string) error {
	orderStatus := entity.OrderStatus(status)
	if !orderStatus.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, number, orderStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

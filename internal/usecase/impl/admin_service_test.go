package impl

import (
	"context"
	"testing"
	"time"

	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(number, email string, total float64) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:         uuid.New(),
		Number:     number,
		Email:      email,
		Status:     entity.OrderStatusPending,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newAdminFixture(orderRepo *memOrderRepo, newsletterRepo *memNewsletterRepo) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		OrderRepo:      orderRepo,
		NewsletterRepo: newsletterRepo,
		CatalogRepo: &staticCatalogRepo{products: []entity.Product{
			testProduct(1, "Sencha", 24.99),
			testProduct(2, "Earl Grey", 19.99),
		}},
	})
}

func TestAdminService_GetDashboard(t *testing.T) {
	orderRepo := &memOrderRepo{orders: []*entity.Order{
		testOrder("ZAM-AAAA0001", "a@example.com", 79.96),
		testOrder("ZAM-AAAA0002", "b@example.com", 29.98),
		testOrder("ZAM-AAAA0003", "a@example.com", 49.99),
	}}
	newsletterRepo := &memNewsletterRepo{emails: []string{"a@example.com"}}
	service := newAdminFixture(orderRepo, newsletterRepo)

	dashboard, err := service.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.Stats.TotalOrders)
	assert.InDelta(t, 159.93, dashboard.Stats.TotalRevenue, 0.001)
	assert.Equal(t, int64(2), dashboard.Stats.TotalCustomers)
	assert.Equal(t, 2, dashboard.Stats.TotalProducts)
	assert.Equal(t, int64(1), dashboard.Stats.Subscribers)

	require.Len(t, dashboard.RecentOrders, 3)
	assert.Equal(t, "ZAM-AAAA0003", dashboard.RecentOrders[0].Number, "newest order first")
}

func TestAdminService_GetDashboard_LimitsRecentOrders(t *testing.T) {
	orderRepo := &memOrderRepo{}
	for i := 0; i < 8; i++ {
		orderRepo.orders = append(orderRepo.orders, testOrder(uuid.NewString(), "a@example.com", 10))
	}
	service := newAdminFixture(orderRepo, &memNewsletterRepo{})

	dashboard, err := service.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, dashboard.RecentOrders, recentOrdersLimit)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	orderRepo := &memOrderRepo{orders: []*entity.Order{
		testOrder("ZAM-AAAA0001", "a@example.com", 79.96),
	}}
	service := newAdminFixture(orderRepo, &memNewsletterRepo{})

	err := service.UpdateOrderStatus(context.Background(), "ZAM-AAAA0001", "shipped")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusShipped, orderRepo.orders[0].Status)
}

func TestAdminService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	service := newAdminFixture(&memOrderRepo{}, &memNewsletterRepo{})

	err := service.UpdateOrderStatus(context.Background(), "ZAM-AAAA0001", "teleported")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestAdminService_UpdateOrderStatus_UnknownOrder(t *testing.T) {
	service := newAdminFixture(&memOrderRepo{}, &memNewsletterRepo{})

	err := service.UpdateOrderStatus(context.Background(), "ZAM-MISSING1", "shipped")

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

package handler

import (
	"context"
	"io"
	"log/slog"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
)

// Minimal in-memory stubs backing the handler tests.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type cartRepoStub struct {
	lines []entity.CartLine
}

func (r *cartRepoStub) Load(ctx context.Context) ([]entity.CartLine, error) {
	return r.lines, nil
}

func (r *cartRepoStub) Save(ctx context.Context, lines []entity.CartLine) error {
	r.lines = lines

	return nil
}

type orderRepoStub struct {
	orders []*entity.Order
}

func (r *orderRepoStub) CreateOrder(ctx context.Context, order *entity.Order) error {
	r.orders = append(r.orders, order)

	return nil
}

func (r *orderRepoStub) FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *orderRepoStub) ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	return r.orders, nil
}

func (r *orderRepoStub) UpdateOrderStatus(ctx context.Context, number string, status entity.OrderStatus) error {
	return nil
}

func (r *orderRepoStub) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *orderRepoStub) SumRevenue(ctx context.Context) (float64, error) {
	return 0, nil
}

func (r *orderRepoStub) CountCustomers(ctx context.Context) (int64, error) {
	return 0, nil
}

type qrServiceStub struct{}

func (qrServiceStub) GenerateOrderQR(orderNumber string) ([]byte, error) {
	return []byte("png-bytes"), nil
}

package impl

import (
	"context"
	"io"
	"log/slog"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
)

// Hand-written in-memory fakes shared by the service tests.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id int, name string, price float64) entity.Product {
	return entity.Product{
		ID:           id,
		Name:         name,
		Price:        price,
		Category:     "zielona",
		Description:  "testowa herbata",
		Availability: true,
		Popularity:   4.0,
	}
}

type memCartRepo struct {
	lines     []entity.CartLine
	loadErr   error
	saveErr   error
	saveCalls int
}

func (r *memCartRepo) Load(ctx context.Context) ([]entity.CartLine, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	snapshot := make([]entity.CartLine, len(r.lines))
	copy(snapshot, r.lines)

	return snapshot, nil
}

func (r *memCartRepo) Save(ctx context.Context, lines []entity.CartLine) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}

	r.lines = make([]entity.CartLine, len(lines))
	copy(r.lines, lines)

	return nil
}

type memFavoritesRepo struct {
	products  []entity.Product
	loadErr   error
	saveErr   error
	saveCalls int
}

func (r *memFavoritesRepo) Load(ctx context.Context) ([]entity.Product, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	snapshot := make([]entity.Product, len(r.products))
	copy(snapshot, r.products)

	return snapshot, nil
}

func (r *memFavoritesRepo) Save(ctx context.Context, products []entity.Product) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}

	r.products = make([]entity.Product, len(products))
	copy(r.products, products)

	return nil
}

type memOrderRepo struct {
	orders []*entity.Order
}

func (r *memOrderRepo) CreateOrder(ctx context.Context, order *entity.Order) error {
	r.orders = append(r.orders, order)

	return nil
}

func (r *memOrderRepo) FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	recent := make([]*entity.Order, 0, limit)
	for i := len(r.orders) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.orders[i])
	}

	return recent, nil
}

func (r *memOrderRepo) UpdateOrderStatus(ctx context.Context, number string, status entity.OrderStatus) error {
	for _, order := range r.orders {
		if order.Number == number {
			order.Status = status

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

func (r *memOrderRepo) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *memOrderRepo) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, order := range r.orders {
		total += order.TotalPrice
	}

	return total, nil
}

func (r *memOrderRepo) CountCustomers(ctx context.Context) (int64, error) {
	seen := map[string]struct{}{}
	for _, order := range r.orders {
		seen[order.Email] = struct{}{}
	}

	return int64(len(seen)), nil
}

type memNewsletterRepo struct {
	emails []string
}

func (r *memNewsletterRepo) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) (bool, error) {
	for _, email := range r.emails {
		if email == subscription.Email {
			return false, nil
		}
	}

	r.emails = append(r.emails, subscription.Email)

	return true, nil
}

func (r *memNewsletterRepo) CountSubscriptions(ctx context.Context) (int64, error) {
	return int64(len(r.emails)), nil
}

type memContactRepo struct {
	messages []*entity.ContactMessage
}

func (r *memContactRepo) SaveMessage(ctx context.Context, message *entity.ContactMessage) error {
	r.messages = append(r.messages, message)

	return nil
}

type staticCatalogRepo struct {
	products []entity.Product
}

func (r *staticCatalogRepo) ListProducts() []entity.Product {
	snapshot := make([]entity.Product, len(r.products))
	copy(snapshot, r.products)

	return snapshot
}

func (r *staticCatalogRepo) FindProductByID(id int) (entity.Product, bool) {
	for _, product := range r.products {
		if product.ID == id {
			return product, true
		}
	}

	return entity.Product{}, false
}

func (r *staticCatalogRepo) PriceRange() (minPrice, maxPrice float64) {
	return 15, 50
}

type stubQRCodeService struct {
	payload []byte
	err     error
}

func (s *stubQRCodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.payload, nil
}

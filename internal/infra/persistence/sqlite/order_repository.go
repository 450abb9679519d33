package sqlite

import (
	"context"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order together with its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	return nil
}

// FindOrderByNumber retrieves an order (with lines) by its public number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("number = ?", number).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// ListRecentOrders retrieves the most recently created orders.
func (repo *orderRepository) ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus updates the fulfilment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, number string, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("number = ?", number).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CountOrders returns the total number of orders.
func (repo *orderRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumRevenue returns the sum of total prices across all orders.
func (repo *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum revenue")
	}

	return revenue, nil
}

// CountCustomers returns the number of distinct order emails.
func (repo *orderRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Distinct("email").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	lines := make([]model.OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, model.OrderLineModel{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &model.OrderModel{
		ID:             order.ID,
		Number:         order.Number,
		Email:          order.Email,
		Phone:          order.Phone,
		FirstName:      order.FirstName,
		LastName:       order.LastName,
		Address:        order.Address,
		City:           order.City,
		PostalCode:     order.PostalCode,
		DeliveryMethod: order.DeliveryMethod,
		PaymentMethod:  order.PaymentMethod,
		ItemsPrice:     order.ItemsPrice,
		DeliveryPrice:  order.DeliveryPrice,
		TotalPrice:     order.TotalPrice,
		Status:         string(order.Status),
		Lines:          lines,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(orderM.Lines))
	for _, lineM := range orderM.Lines {
		lines = append(lines, entity.OrderLine{
			ProductID: lineM.ProductID,
			Name:      lineM.Name,
			UnitPrice: lineM.UnitPrice,
			Quantity:  lineM.Quantity,
		})
	}

	return &entity.Order{
		ID:             orderM.ID,
		Number:         orderM.Number,
		Email:          orderM.Email,
		Phone:          orderM.Phone,
		FirstName:      orderM.FirstName,
		LastName:       orderM.LastName,
		Address:        orderM.Address,
		City:           orderM.City,
		PostalCode:     orderM.PostalCode,
		DeliveryMethod: orderM.DeliveryMethod,
		PaymentMethod:  orderM.PaymentMethod,
		ItemsPrice:     orderM.ItemsPrice,
		DeliveryPrice:  orderM.DeliveryPrice,
		TotalPrice:     orderM.TotalPrice,
		Status:         entity.OrderStatus(orderM.Status),
		Lines:          lines,
		CreatedAt:      orderM.CreatedAt,
		UpdatedAt:      orderM.UpdatedAt,
	}
}

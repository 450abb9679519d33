package impl

import (
	"context"
	"math"
	"strings"
	"time"

	"herbaciarnia/internal/domain/entity"
	domainerrors "herbaciarnia/internal/domain/errors"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/domain/service"
	"herbaciarnia/internal/errors"
	"herbaciarnia/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// deliveryPrices mirrors the delivery options offered by the checkout page.
var deliveryPrices = map[string]float64{
	usecase.DeliveryStandard: 9.99,
	usecase.DeliveryExpress:  19.99,
	usecase.DeliveryPickup:   0,
}

var paymentMethods = map[string]struct{}{
	usecase.PaymentCard:     {},
	usecase.PaymentTransfer: {},
	usecase.PaymentPayPal:   {},
}

type checkoutService struct {
	cartUC        usecase.CartUsecase
	orderRepo     repository.OrderRepository
	qrcodeService service.QRCodeService
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartUC        usecase.CartUsecase
	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartUC:        params.CartUC,
		orderRepo:     params.OrderRepo,
		qrcodeService: params.QRCodeService,
	}
}

// PlaceOrder freezes the cart into an order, persists it and clears the cart.
// Payment is simulated: the order is accepted immediately with status pending.
func (s *checkoutService) PlaceOrder(ctx context.Context, form usecase.CheckoutForm) (*entity.Order, error) {
	deliveryPrice, ok := deliveryPrices[form.DeliveryMethod]
	if !ok {
		return nil, domainerrors.ErrInvalidDeliveryMethod
	}

	if _, ok := paymentMethods[form.PaymentMethod]; !ok {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	lines := s.cartUC.Lines()
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	itemsPrice := s.cartUC.TotalPrice()
	now := time.Now()

	order := &entity.Order{
		ID:             uuid.New(),
		Number:         newOrderNumber(),
		Email:          strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:          form.Phone,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Address:        form.Address,
		City:           form.City,
		PostalCode:     form.PostalCode,
		DeliveryMethod: form.DeliveryMethod,
		PaymentMethod:  form.PaymentMethod,
		ItemsPrice:     itemsPrice,
		DeliveryPrice:  deliveryPrice,
		TotalPrice:     math.Round((itemsPrice+deliveryPrice)*100) / 100,
		Status:         entity.OrderStatusPending,
		Lines:          orderLinesFromCart(lines),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := s.cartUC.Clear(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	return order, nil
}

// GetOrder retrieves a placed order by its public number.
func (s *checkoutService) GetOrder(ctx context.Context, number string) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return order, nil
}

// OrderQR renders the order number as a PNG QR code.
func (s *checkoutService) OrderQR(ctx context.Context, number string) ([]byte, error) {
	order, err := s.GetOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateOrderQR(order.Number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return qrCode, nil
}

// DeliveryPrice returns the price of a delivery method.
func (s *checkoutService) DeliveryPrice(method string) (float64, bool) {
	price, ok := deliveryPrices[method]

	return price, ok
}

func orderLinesFromCart(lines []entity.CartLine) []entity.OrderLine {
	orderLines := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, entity.OrderLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	return orderLines
}

// newOrderNumber builds the human-facing order number printed on the
// confirmation page, e.g. "ZAM-1B9D6BCD".
func newOrderNumber() string {
	id := uuid.New().String()

	return "ZAM-" + strings.ToUpper(id[:8])
}

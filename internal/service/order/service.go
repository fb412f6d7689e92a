package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type cartLedger interface {
	Load(ctx context.Context, userID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type productReader interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type addressReader interface {
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type Service struct {
	repo      orderRepo
	ledger    cartLedger
	products  productReader
	addresses addressReader
	logger    *zap.Logger
	now       func() time.Time
}

func New(repo orderRepo, ledger cartLedger, products productReader, addresses addressReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		ledger:    ledger,
		products:  products,
		addresses: addresses,
		logger:    logger,
		now:       time.Now,
	}
}

type CheckoutInput struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout turns the user's current cart into an order. Product name,
// price and image are copied onto the order items so later catalog edits
// never change order history. The cart is cleared only after the order
// committed.
func (s *Service) Checkout(ctx context.Context, userID string, in CheckoutInput) (*domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: payment method required", domain.ErrInvalidArgument)
	}

	address, err := s.resolveAddress(ctx, userID, in.AddressID)
	if err != nil {
		return nil, err
	}

	cart, err := s.ledger.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalidArgument)
	}

	items := make([]domain.OrderItem, 0, len(cart.Lines))
	total := decimal.Zero
	for _, line := range cart.Lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s no longer exists", domain.ErrInvalidArgument, line.ProductID)
			}
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:       product.ID,
			Qty:             line.Qty,
			NameAtOrder:     product.Name,
			PriceAtOrder:    product.Price,
			ImageURLAtOrder: product.ImageURL,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}

	created, err := s.repo.Create(ctx, domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		DeliveryAddress: *address,
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		Status:          domain.OrderStatusProcessing,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Clear(ctx, userID); err != nil {
		// order already committed, do not fail the checkout
		s.logger.Warn("order placed but cart not cleared",
			zap.String("user_id", userID),
			zap.String("order_id", created.ID),
			zap.Error(err))
	}

	return created, nil
}

// List returns the user's orders newest first, with status derived from
// order age: a day out for delivery, six hours to ship.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range orders {
		orders[i].Status = statusFor(orders[i].OrderDate, now)
	}
	return orders, nil
}

func (s *Service) resolveAddress(ctx context.Context, userID, addressID string) (*domain.Address, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, fmt.Errorf("%w: delivery address required", domain.ErrInvalidArgument)
	}
	addresses, err := s.addresses.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range addresses {
		if a.ID == addressID {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: address %s", domain.ErrNotFound, addressID)
}

func statusFor(orderDate, now time.Time) string {
	age := now.Sub(orderDate)
	switch {
	case age >= 24*time.Hour:
		return domain.OrderStatusDelivered
	case age >= 6*time.Hour:
		return domain.OrderStatusShipped
	default:
		return domain.OrderStatusProcessing
	}
}

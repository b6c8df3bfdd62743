package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/events"
	"storefront/internal/model"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID, cartID string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID uint, status model.PaymentStatus) (*model.Order, error)
}

type orderServiceImpl struct {
	db           *gorm.DB
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	bus          *events.Bus
}

func NewOrderService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	bus *events.Bus,
) OrderService {
	return &orderServiceImpl{
		db:           db,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		bus:          bus,
	}
}

// PlaceOrder converts a cart into an order. Order, order items and cart
// deletion commit or roll back together; the order.created event goes out
// only after the commit, and subscriber failures never reach the caller.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID, cartID string) (*model.Order, error) {
	exists, err := s.cartRepo.Exists(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("check cart: %w", err)
	}
	if !exists {
		return nil, validationErr("cart_id", "no cart with given id found")
	}

	itemCount, err := s.cartRepo.ItemCount(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("count cart items: %w", err)
	}
	if itemCount == 0 {
		return nil, validationErr("cart_id", "the cart is empty")
	}

	customer, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer for user %s: %w", userID, err)
	}

	var order *model.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order = &model.Order{
			PaymentStatus: model.PaymentPending,
			CustomerID:    customer.ID,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// live prices read inside the transaction become the permanent
		// unit price snapshot
		cartItems, err := s.cartRepo.ItemsWithProduct(ctx, tx, cartID)
		if err != nil {
			return fmt.Errorf("load cart items: %w", err)
		}

		orderItems := make([]*model.OrderItem, len(cartItems))
		for i, item := range cartItems {
			orderItems[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		if err := s.cartRepo.Delete(ctx, tx, cartID); err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicOrderCreated, events.OrderCreated{Order: order})

	return s.orderRepo.FindByID(ctx, order.ID)
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderServiceImpl) UpdatePaymentStatus(ctx context.Context, orderID uint, status model.PaymentStatus) (*model.Order, error) {
	if !model.ValidPaymentStatus(status) {
		return nil, validationErr("payment_status", "payment status must be one of P, C, F")
	}

	err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	return s.orderRepo.FindByID(ctx, orderID)
}

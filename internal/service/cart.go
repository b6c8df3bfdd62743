package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService interface {
	CreateCart(ctx context.Context) (*model.Cart, error)
	GetCart(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID string, productID uint, quantity int) (*model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, cartID string, itemID uint) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) CreateCart(ctx context.Context) (*model.Cart, error) {
	cart := &model.Cart{
		ID: uuid.NewString(),
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	return cart, nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, cartID string) (*model.Cart, error) {
	cart, err := s.cartRepo.FindWithItems(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	return cart, nil
}

// AddItem accumulates quantity when the product is already in the cart. The
// upsert goes through the (cart_id, product_id) unique index, so concurrent
// adds for the same pair end up as a single incremented row.
func (s *cartServiceImpl) AddItem(ctx context.Context, cartID string, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, validationErr("quantity", "quantity must be positive")
	}

	exists, err := s.cartRepo.Exists(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("check cart: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("product_id", "no product with given id was found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if err := s.cartRepo.UpsertItem(ctx, &model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}); err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}

	item, err := s.cartRepo.FindItem(ctx, cartID, productID)
	if err != nil {
		return nil, fmt.Errorf("reload cart item: %w", err)
	}

	return item, nil
}

// UpdateItemQuantity overwrites the quantity, it does not add to it.
func (s *cartServiceImpl) UpdateItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, validationErr("quantity", "quantity must be positive")
	}

	err := s.cartRepo.UpdateItemQuantity(ctx, cartID, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}

	cart, err := s.cartRepo.FindWithItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("reload cart: %w", err)
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return &cart.Items[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, cartID string, itemID uint) error {
	err := s.cartRepo.DeleteItem(ctx, cartID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

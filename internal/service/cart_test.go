package service

import (
	"context"
	"errors"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) CartService {
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCart_AddSameProductAccumulates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	product := createTestProduct(t, db, collection.ID, "Coffee", "10.00")

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cart.ID)

	item, err := svc.AddItem(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = svc.AddItem(ctx, cart.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	// one row, not two
	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCart_AddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, cart.ID, 9999, 1)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "no product with given id was found", validationErr.Message)
}

func TestCart_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	product := createTestProduct(t, db, collection.ID, "Coffee", "10.00")

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	var validationErr *ValidationError
	_, err = svc.AddItem(ctx, cart.ID, product.ID, 0)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.AddItem(ctx, cart.ID, product.ID, -2)
	require.ErrorAs(t, err, &validationErr)
}

func TestCart_AddItemUnknownCart(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	product := createTestProduct(t, db, collection.ID, "Coffee", "10.00")

	_, err := svc.AddItem(ctx, "no-such-cart", product.ID, 1)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCart_UpdateItemQuantityOverwrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	product := createTestProduct(t, db, collection.ID, "Coffee", "10.00")

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)

	updated, err := svc.UpdateItemQuantity(ctx, cart.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = svc.UpdateItemQuantity(ctx, cart.ID, 9999, 3)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	product := createTestProduct(t, db, collection.ID, "Coffee", "10.00")

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, cart.ID, item.ID))

	reloaded, err := svc.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)

	require.True(t, errors.Is(svc.RemoveItem(ctx, cart.ID, item.ID), ErrNotFound))
}

func TestCart_TotalPrice(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	collection := createTestCollection(t, db, "Beverages")
	productA := createTestProduct(t, db, collection.ID, "Coffee", "10.00")
	productB := createTestProduct(t, db, collection.ID, "Tea", "5.00")

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, cart.ID, productA.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, productB.ID, 1)
	require.NoError(t, err)

	reloaded, err := svc.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	resp := dto.NewCartResponse(reloaded)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("25.00")),
		"total = %s", resp.TotalPrice)
}

func TestCart_GetUnknown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newCartService(db)

	_, err := svc.GetCart(ctx, "no-such-cart")
	require.True(t, errors.Is(err, ErrNotFound))
}

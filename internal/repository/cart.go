package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	FindWithItems(ctx context.Context, cartID string) (*model.Cart, error)
	Exists(ctx context.Context, cartID string) (bool, error)
	UpsertItem(ctx context.Context, item *model.CartItem) error
	FindItem(ctx context.Context, cartID string, productID uint) (*model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, cartID string, itemID uint) error
	ItemsWithProduct(ctx context.Context, tx *gorm.DB, cartID string) ([]*model.CartItem, error)
	ItemCount(ctx context.Context, cartID string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, cartID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepoImpl) FindWithItems(ctx context.Context, cartID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ?", cartID).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) Exists(ctx context.Context, cartID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		Count(&count).Error

	return count > 0, err
}

// UpsertItem inserts the line or atomically bumps the existing quantity for
// the same (cart, product). The unique index makes this safe under
// concurrent adds.
func (r *cartRepoImpl) UpsertItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

func (r *cartRepoImpl) FindItem(ctx context.Context, cartID string, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) UpdateItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) DeleteItem(ctx context.Context, cartID string, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) ItemsWithProduct(ctx context.Context, tx *gorm.DB, cartID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := tx.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) ItemCount(ctx context.Context, cartID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error

	return count, err
}

// Delete removes the cart and its items; items first because sqlite does
// not cascade for us here.
func (r *cartRepoImpl) Delete(ctx context.Context, tx *gorm.DB, cartID string) error {
	if err := tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Delete(&model.Cart{}, "id = ?", cartID).Error
}

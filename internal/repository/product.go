package repository

import (
	"context"
	"storefront/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductFilter struct {
	CollectionID *uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID uint) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, tx *gorm.DB, productID uint) error
	CountByCollection(ctx context.Context, collectionID uint) (int64, error)
	ReplacePromotions(ctx context.Context, product *model.Product, promotions []model.Promotion) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	collections := []model.Collection{
		{ID: 1, Title: "Beverages"},
		{ID: 2, Title: "Grains"},
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&collections).Error; err != nil {
		return err
	}

	products := []model.Product{
		{ID: 1, Title: "Coffee Beans 1kg", Description: "Dark roast", Price: decimal.NewFromFloat(18.50), Inventory: 40, CollectionID: 1},
		{ID: 2, Title: "Green Tea 50 bags", Description: "Loose leaf quality", Price: decimal.NewFromFloat(7.25), Inventory: 120, CollectionID: 1},
		{ID: 3, Title: "Basmati Rice 5kg", Description: "Aged long grain", Price: decimal.NewFromFloat(12.00), Inventory: 60, CollectionID: 2},
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Promotions").
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) List(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	query := r.db.WithContext(ctx).Preload("Promotions").Order("title")
	if filter.CollectionID != nil {
		query = query.Where("collection_id = ?", *filter.CollectionID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []*model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, tx *gorm.DB, productID uint) error {
	// cart lines pointing at the product go with it
	if err := tx.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

func (r *productRepoImpl) CountByCollection(ctx context.Context, collectionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error

	return count, err
}

func (r *productRepoImpl) ReplacePromotions(ctx context.Context, product *model.Product, promotions []model.Promotion) error {
	return r.db.WithContext(ctx).Model(product).Association("Promotions").Replace(promotions)
}

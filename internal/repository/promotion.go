package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
)

type PromotionRepository interface {
	List(ctx context.Context) ([]*model.Promotion, error)
	FindMany(ctx context.Context, promotionIDs []uint) ([]model.Promotion, error)
	Create(ctx context.Context, promotion *model.Promotion) error
}

type promotionRepoImpl struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepoImpl{
		db: db,
	}
}

func (r *promotionRepoImpl) List(ctx context.Context) ([]*model.Promotion, error) {
	var promotions []*model.Promotion
	err := r.db.WithContext(ctx).Find(&promotions).Error
	if err != nil {
		return nil, err
	}

	return promotions, nil
}

func (r *promotionRepoImpl) FindMany(ctx context.Context, promotionIDs []uint) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).
		Where("id IN ?", promotionIDs).
		Find(&promotions).Error

	if err != nil {
		return nil, err
	}

	return promotions, nil
}

func (r *promotionRepoImpl) Create(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

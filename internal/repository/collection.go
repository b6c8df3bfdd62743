package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	FindByID(ctx context.Context, collectionID uint) (*model.Collection, error)
	List(ctx context.Context) ([]*model.Collection, error)
	Create(ctx context.Context, collection *model.Collection) error
	Save(ctx context.Context, collection *model.Collection) error
	Delete(ctx context.Context, collectionID uint) error
}

type collectionRepoImpl struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepoImpl{
		db: db,
	}
}

func (r *collectionRepoImpl) FindByID(ctx context.Context, collectionID uint) (*model.Collection, error) {
	var collection model.Collection
	err := r.db.WithContext(ctx).
		Where("id = ?", collectionID).
		First(&collection).Error

	if err != nil {
		return nil, err
	}

	return &collection, nil
}

func (r *collectionRepoImpl) List(ctx context.Context) ([]*model.Collection, error) {
	var collections []*model.Collection
	err := r.db.WithContext(ctx).Order("title").Find(&collections).Error
	if err != nil {
		return nil, err
	}

	return collections, nil
}

func (r *collectionRepoImpl) Create(ctx context.Context, collection *model.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepoImpl) Save(ctx context.Context, collection *model.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepoImpl) Delete(ctx context.Context, collectionID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Collection{}, collectionID).Error
}

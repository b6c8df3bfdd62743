package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Upsert(ctx context.Context, like *model.LikedItem) error
	CountFor(ctx context.Context, kind model.TargetKind, targetID uint) (int64, error)
}

type likeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepoImpl{
		db: db,
	}
}

func (r *likeRepoImpl) Upsert(ctx context.Context, like *model.LikedItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

func (r *likeRepoImpl) CountFor(ctx context.Context, kind model.TargetKind, targetID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikedItem{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error

	return count, err
}

package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	FindOrCreate(ctx context.Context, label string) (*model.Tag, error)
	Bind(ctx context.Context, item *model.TaggedItem) error
	TagsFor(ctx context.Context, kind model.TargetKind, targetID uint) ([]*model.Tag, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepoImpl{
		db: db,
	}
}

func (r *tagRepoImpl) FindOrCreate(ctx context.Context, label string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).
		Where(model.Tag{Label: label}).
		FirstOrCreate(&tag).Error

	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Bind is idempotent: re-tagging the same target with the same tag is a
// no-op rather than a duplicate row.
func (r *tagRepoImpl) Bind(ctx context.Context, item *model.TaggedItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
}

func (r *tagRepoImpl) TagsFor(ctx context.Context, kind model.TargetKind, targetID uint) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN tagged_items ON tagged_items.tag_id = tags.id").
		Where("tagged_items.target_kind = ? AND tagged_items.target_id = ?", kind, targetID).
		Find(&tags).Error

	if err != nil {
		return nil, err
	}

	return tags, nil
}

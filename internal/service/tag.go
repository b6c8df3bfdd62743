package service

import (
	"context"
	"fmt"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type TagService interface {
	Tag(ctx context.Context, kind model.TargetKind, targetID uint, label string) (*model.Tag, error)
	TagsFor(ctx context.Context, kind model.TargetKind, targetID uint) ([]*model.Tag, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagServiceImpl{
		tagRepo: tagRepo,
	}
}

func (s *tagServiceImpl) Tag(ctx context.Context, kind model.TargetKind, targetID uint, label string) (*model.Tag, error) {
	if !model.KnownTargetKind(kind) {
		return nil, validationErr("target_kind", "unknown target kind")
	}
	if label == "" {
		return nil, validationErr("label", "label is required")
	}
	if targetID == 0 {
		return nil, validationErr("target_id", "target id is required")
	}

	tag, err := s.tagRepo.FindOrCreate(ctx, label)
	if err != nil {
		return nil, fmt.Errorf("find or create tag: %w", err)
	}

	if err := s.tagRepo.Bind(ctx, &model.TaggedItem{
		TagID:      tag.ID,
		TargetKind: kind,
		TargetID:   targetID,
	}); err != nil {
		return nil, fmt.Errorf("bind tag: %w", err)
	}

	return tag, nil
}

func (s *tagServiceImpl) TagsFor(ctx context.Context, kind model.TargetKind, targetID uint) ([]*model.Tag, error) {
	if !model.KnownTargetKind(kind) {
		return nil, validationErr("target_kind", "unknown target kind")
	}
	return s.tagRepo.TagsFor(ctx, kind, targetID)
}

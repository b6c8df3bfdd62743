package service

import (
	"context"
	"fmt"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type LikeService interface {
	Like(ctx context.Context, userID string, kind model.TargetKind, targetID uint) error
	Count(ctx context.Context, kind model.TargetKind, targetID uint) (int64, error)
}

type likeServiceImpl struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeServiceImpl{
		likeRepo: likeRepo,
	}
}

// Like is idempotent per (user, target); liking twice counts once.
func (s *likeServiceImpl) Like(ctx context.Context, userID string, kind model.TargetKind, targetID uint) error {
	if !model.KnownTargetKind(kind) {
		return validationErr("target_kind", "unknown target kind")
	}
	if targetID == 0 {
		return validationErr("target_id", "target id is required")
	}

	if err := s.likeRepo.Upsert(ctx, &model.LikedItem{
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
	}); err != nil {
		return fmt.Errorf("save like: %w", err)
	}
	return nil
}

func (s *likeServiceImpl) Count(ctx context.Context, kind model.TargetKind, targetID uint) (int64, error) {
	if !model.KnownTargetKind(kind) {
		return 0, validationErr("target_kind", "unknown target kind")
	}
	return s.likeRepo.CountFor(ctx, kind, targetID)
}

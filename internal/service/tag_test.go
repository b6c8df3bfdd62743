package service

import (
	"context"
	"storefront/internal/model"
	"storefront/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_TagAndQuery(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	tag, err := svc.Tag(ctx, model.KindProduct, 1, "sale")
	require.NoError(t, err)
	assert.Equal(t, "sale", tag.Label)

	tags, err := svc.TagsFor(ctx, model.KindProduct, 1)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "sale", tags[0].Label)

	// a different target has no tags
	tags, err = svc.TagsFor(ctx, model.KindProduct, 2)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTag_LabelIsReused(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	_, err := svc.Tag(ctx, model.KindProduct, 1, "sale")
	require.NoError(t, err)
	_, err = svc.Tag(ctx, model.KindCollection, 3, "sale")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTag_RetaggingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	_, err := svc.Tag(ctx, model.KindProduct, 1, "sale")
	require.NoError(t, err)
	_, err = svc.Tag(ctx, model.KindProduct, 1, "sale")
	require.NoError(t, err)

	tags, err := svc.TagsFor(ctx, model.KindProduct, 1)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTag_UnknownKind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	var validationErr *ValidationError
	_, err := svc.Tag(ctx, "warehouse", 1, "sale")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.TagsFor(ctx, "warehouse", 1)
	require.ErrorAs(t, err, &validationErr)
}

func TestLike_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewLikeService(repository.NewLikeRepository(db))

	require.NoError(t, svc.Like(ctx, "user-1", model.KindProduct, 1))
	require.NoError(t, svc.Like(ctx, "user-1", model.KindProduct, 1))
	require.NoError(t, svc.Like(ctx, "user-2", model.KindProduct, 1))

	count, err := svc.Count(ctx, model.KindProduct, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.Count(ctx, model.KindProduct, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

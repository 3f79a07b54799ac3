package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, postRepo *memPostRepo, userID uint64, status string) *model.Post {
	t.Helper()
	post := &model.Post{
		UserID:     userID,
		CategoryID: 1,
		Title:      "测试帖子标题",
		Content:    "测试帖子正文内容测试帖子正文内容",
		Status:     status,
	}
	require.NoError(t, postRepo.CreatePost(context.Background(), post, nil))
	return post
}

func TestToggleLike(t *testing.T) {
	postRepo := newMemPostRepo()
	actionRepo := newMemActionRepo()
	svc := NewPostActionService(actionRepo, postRepo)

	post := seedPost(t, postRepo, 1, consts.PostStatusActive)

	result, err := svc.ToggleLike(context.Background(), 7, consts.RoleUser, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "liked", result.Action)
	assert.EqualValues(t, 1, result.LikeCount)

	// 重复点赞即取消
	result, err = svc.ToggleLike(context.Background(), 7, consts.RoleUser, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "unliked", result.Action)
	assert.EqualValues(t, 0, result.LikeCount)

	// 再来一次又变回点赞
	result, err = svc.ToggleLike(context.Background(), 7, consts.RoleUser, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "liked", result.Action)
	assert.EqualValues(t, 1, result.LikeCount)
}

func TestToggleLikeCountsPerUser(t *testing.T) {
	postRepo := newMemPostRepo()
	actionRepo := newMemActionRepo()
	svc := NewPostActionService(actionRepo, postRepo)

	post := seedPost(t, postRepo, 1, consts.PostStatusActive)

	for userID := uint64(1); userID <= 3; userID++ {
		_, err := svc.ToggleLike(context.Background(), userID, consts.RoleUser, post.ID)
		require.NoError(t, err)
	}

	count, err := actionRepo.GetLikeCountByPostID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestToggleSave(t *testing.T) {
	postRepo := newMemPostRepo()
	actionRepo := newMemActionRepo()
	svc := NewPostActionService(actionRepo, postRepo)

	post := seedPost(t, postRepo, 1, consts.PostStatusActive)

	result, err := svc.ToggleSave(context.Background(), 7, consts.RoleUser, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "saved", result.Action)

	result, err = svc.ToggleSave(context.Background(), 7, consts.RoleUser, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "unsaved", result.Action)
}

func TestToggleOnHiddenPost(t *testing.T) {
	postRepo := newMemPostRepo()
	actionRepo := newMemActionRepo()
	svc := NewPostActionService(actionRepo, postRepo)

	draft := seedPost(t, postRepo, 1, consts.PostStatusDraft)

	// 路人视角：草稿与不存在的帖子均按不存在处理
	_, err := svc.ToggleLike(context.Background(), 7, consts.RoleUser, draft.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.ToggleSave(context.Background(), 7, consts.RoleUser, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// 作者与管理员仍可操作自己的/任意草稿
	result, err := svc.ToggleLike(context.Background(), 1, consts.RoleUser, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "liked", result.Action)

	result, err = svc.ToggleSave(context.Background(), 2, consts.RoleAdmin, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "saved", result.Action)
}

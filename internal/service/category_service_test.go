package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	postRepo := newMemPostRepo()
	svc := NewCategoryService(newMemCategoryRepo(postRepo), newMemStatsRepo())

	category, err := svc.CreateCategory(context.Background(), 1, &dto.CategoryCreateDTO{Name: "生活"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), 1, &dto.CategoryCreateDTO{Name: "生活"})
	assert.ErrorIs(t, err, ErrCategoryExist)

	renamed, err := svc.UpdateCategory(context.Background(), category.ID, &dto.CategoryCreateDTO{Name: "日常"})
	require.NoError(t, err)
	assert.Equal(t, "日常", renamed.Name)

	_, err = svc.UpdateCategory(context.Background(), 9999, &dto.CategoryCreateDTO{Name: "不存在"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteCategoryInUse(t *testing.T) {
	postRepo := newMemPostRepo()
	svc := NewCategoryService(newMemCategoryRepo(postRepo), newMemStatsRepo())

	category, err := svc.CreateCategory(context.Background(), 1, &dto.CategoryCreateDTO{Name: "技术"})
	require.NoError(t, err)

	require.NoError(t, postRepo.CreatePost(context.Background(), &model.Post{
		UserID:     1,
		CategoryID: category.ID,
		Title:      "占用分类的帖子标题",
		Content:    "正文内容至少要有十个字符以上",
		Status:     consts.PostStatusActive,
	}, nil))

	// 分类下有帖子时删除被拒绝
	err = svc.DeleteCategory(context.Background(), 1, category.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	require.NoError(t, postRepo.DeletePost(context.Background(), 1))
	require.NoError(t, svc.DeleteCategory(context.Background(), 1, category.ID))

	err = svc.DeleteCategory(context.Background(), 1, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestTagService(t *testing.T) {
	svc := NewTagService(newMemTagRepo())

	tag, err := svc.CreateTag(context.Background(), &dto.TagCreateDTO{Name: "go"})
	require.NoError(t, err)

	_, err = svc.CreateTag(context.Background(), &dto.TagCreateDTO{Name: "go"})
	assert.ErrorIs(t, err, ErrTagExist)

	require.NoError(t, svc.DeleteTag(context.Background(), tag.ID))
	assert.ErrorIs(t, svc.DeleteTag(context.Background(), tag.ID), ErrTagNotFound)
}

package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostFilter 列表查询条件；零值字段不参与过滤
type PostFilter struct {
	CategoryID uint64
	TagID      uint64
	UserID     uint64
	Status     string
	Limit      int
	Offset     int
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, filter *PostFilter) ([]*model.Post, error)
	ListPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error)
	ListPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	DeletePost(ctx context.Context, id uint64) error
	CountByCategory(ctx context.Context, categoryID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(post).Error; err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			if err := tx.Create(&model.PostTag{PostID: post.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, filter *PostFilter) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)

	query := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Preload("User").
		Preload("Category").
		Preload("Tags")

	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TagID > 0 {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", filter.TagID)
	}

	result := query.
		Order("posts.created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListPostsByUser 作者视角，包含草稿与未激活帖子
func (s *PostRepoImpl) ListPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		Where("id IN ?", ids).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
			"title":       post.Title,
			"content":     post.Content,
			"status":      post.Status,
			"category_id": post.CategoryID,
			"image_url":   post.ImageURL,
		})
		if result.Error != nil {
			return result.Error
		}

		if tagIDs != nil {
			if err := tx.Where("post_id = ?", post.ID).Delete(&model.PostTag{}).Error; err != nil {
				return err
			}
			for _, tagID := range tagIDs {
				if err := tx.Create(&model.PostTag{PostID: post.ID, TagID: tagID}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// DeletePost 软删除帖子并清理其点赞/收藏/评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.SavedPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) CountByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TagRepo interface {
	CreateTag(ctx context.Context, tag *model.Tag) error
	GetTagByID(ctx context.Context, id uint64) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	FindOrCreateByNames(ctx context.Context, names []string) ([]uint64, error)
	DeleteTag(ctx context.Context, id uint64) error
}

type TagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepo {
	return &TagRepoImpl{db: db}
}

func (s *TagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *TagRepoImpl) GetTagByID(ctx context.Context, id uint64) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).First(tag, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

func (s *TagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	result := s.db.WithContext(ctx).Order("name ASC").Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

// FindOrCreateByNames 发帖时将标签名解析为 ID，不存在则创建
func (s *TagRepoImpl) FindOrCreateByNames(ctx context.Context, names []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(names))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			tag := model.Tag{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			ids = append(ids, tag.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteTag 删除标签及其帖子关联
func (s *TagRepoImpl) DeleteTag(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, id).Error
	})
}

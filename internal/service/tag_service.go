package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type TagService interface {
	CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
	DeleteTag(ctx context.Context, tagID uint64) error
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error) {
	tag := &model.Tag{Name: req.Name}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrTagExist
		}
		return nil, err
	}
	return &dto.TagDTO{ID: tag.ID, Name: tag.Name}, nil
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TagDTO, 0, len(tags))
	if err = copier.Copy(&result, tags); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTag 标签删除连带清掉帖子关联，不受引用限制
func (s *tagServiceImpl) DeleteTag(ctx context.Context, tagID uint64) error {
	tag, err := s.tagRepo.GetTagByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}
	return s.tagRepo.DeleteTag(ctx, tagID)
}

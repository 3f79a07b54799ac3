package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, actorID uint64, req *dto.CategoryCreateDTO) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, categoryID uint64, req *dto.CategoryCreateDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, actorID, categoryID uint64) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
	statsRepo    repository.StatsRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo, statsRepo repository.StatsRepo) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, statsRepo: statsRepo}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, actorID uint64, req *dto.CategoryCreateDTO) (*dto.CategoryDTO, error) {
	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrCategoryExist
		}
		return nil, err
	}

	s.recordActivity(ctx, "create", "category", category.ID, actorID)
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryDTO, 0, len(categories))
	if err = copier.Copy(&result, categories); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID uint64, req *dto.CategoryCreateDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = req.Name
	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrCategoryExist
		}
		return nil, err
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, actorID, categoryID uint64) error {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err = s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryHasPosts) || isForeignKeyRestrictErr(err) {
			return ErrCategoryInUse
		}
		return err
	}

	s.recordActivity(ctx, "delete", "category", categoryID, actorID)
	return nil
}

func (s *categoryServiceImpl) recordActivity(ctx context.Context, action, entity string, entityID, actorID uint64) {
	err := s.statsRepo.CreateActivity(ctx, &model.ActivityLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		ActorID:  actorID,
	})
	if err != nil {
		log.WarnContext(ctx, "Failed to record activity", "entity", entity, "err", err)
	}
}

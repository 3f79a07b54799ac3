package repository

import (
	"Inkstone/internal/model"
	"context"

	"gorm.io/gorm"
)

// RoleCount 按角色聚合的用户数
type RoleCount struct {
	Name  string
	Count int64
}

type StatsRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
	CountLikes(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountTags(ctx context.Context) (int64, error)
	CountChatMessages(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context) ([]RoleCount, error)

	CreateActivity(ctx context.Context, entry *model.ActivityLog) error
	ListRecentActivities(ctx context.Context, limit int) ([]*model.ActivityLog, error)
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

func (s *StatsRepoImpl) count(ctx context.Context, m interface{}) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(m).Count(&count).Error
	return count, err
}

func (s *StatsRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.User{})
}

func (s *StatsRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Post{})
}

func (s *StatsRepoImpl) CountComments(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Comment{})
}

func (s *StatsRepoImpl) CountLikes(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Like{})
}

func (s *StatsRepoImpl) CountCategories(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Category{})
}

func (s *StatsRepoImpl) CountTags(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Tag{})
}

func (s *StatsRepoImpl) CountChatMessages(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.ChatMessage{})
}

func (s *StatsRepoImpl) CountUsersByRole(ctx context.Context) ([]RoleCount, error) {
	counts := make([]RoleCount, 0)
	err := s.db.WithContext(ctx).
		Table("users").
		Select("roles.name AS name, COUNT(users.id) AS count").
		Joins("JOIN roles ON roles.id = users.role_id").
		Group("roles.name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *StatsRepoImpl) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *StatsRepoImpl) ListRecentActivities(ctx context.Context, limit int) ([]*model.ActivityLog, error) {
	entries := make([]*model.ActivityLog, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

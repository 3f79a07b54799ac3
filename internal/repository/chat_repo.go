package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ChatRepo interface {
	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	GetMessageByID(ctx context.Context, id uint64) (*model.ChatMessage, error)
	ListMessagesByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ChatMessage, error)
	ListAllMessages(ctx context.Context, limit, offset int) ([]*model.ChatMessage, error)
	UpdateReply(ctx context.Context, id uint64, reply string) error
	MarkRead(ctx context.Context, id uint64) error
	DeleteMessage(ctx context.Context, id uint64) error
}

type ChatRepoImpl struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) ChatRepo {
	return &ChatRepoImpl{db: db}
}

func (s *ChatRepoImpl) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *ChatRepoImpl) GetMessageByID(ctx context.Context, id uint64) (*model.ChatMessage, error) {
	msg := &model.ChatMessage{}
	result := s.db.WithContext(ctx).Preload("User").First(msg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return msg, nil
}

func (s *ChatRepoImpl) ListMessagesByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ChatMessage, error) {
	msgs := make([]*model.ChatMessage, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgs)
	if result.Error != nil {
		return nil, result.Error
	}
	return msgs, nil
}

func (s *ChatRepoImpl) ListAllMessages(ctx context.Context, limit, offset int) ([]*model.ChatMessage, error) {
	msgs := make([]*model.ChatMessage, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgs)
	if result.Error != nil {
		return nil, result.Error
	}
	return msgs, nil
}

// UpdateReply 写入回复并同时置已读
func (s *ChatRepoImpl) UpdateReply(ctx context.Context, id uint64, reply string) error {
	return s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"reply": reply, "is_read": true}).Error
}

func (s *ChatRepoImpl) MarkRead(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (s *ChatRepoImpl) DeleteMessage(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ChatMessage{}, id).Error
}

package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/repository"
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type ChatService interface {
	SendMessage(ctx context.Context, userID uint64, req *dto.ChatSendDTO) (*dto.ChatMessageDTO, error)
	ListOwnMessages(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.ChatMessageDTO, error)
	ListAllMessages(ctx context.Context, page, pageSize int) ([]*dto.ChatMessageDTO, error)
	ReplyMessage(ctx context.Context, adminID, messageID uint64, req *dto.ChatReplyDTO) (*dto.ChatMessageDTO, error)
	MarkRead(ctx context.Context, messageID uint64) error
	DeleteMessage(ctx context.Context, actorID uint64, actorRole string, messageID uint64) error
}

type chatServiceImpl struct {
	chatRepo repository.ChatRepo
}

func NewChatService(chatRepo repository.ChatRepo) ChatService {
	return &chatServiceImpl{chatRepo: chatRepo}
}

func (s *chatServiceImpl) SendMessage(ctx context.Context, userID uint64, req *dto.ChatSendDTO) (*dto.ChatMessageDTO, error) {
	msg := &model.ChatMessage{
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return toChatMessageDTO(msg), nil
}

func (s *chatServiceImpl) ListOwnMessages(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.ChatMessageDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	msgs, err := s.chatRepo.ListMessagesByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toChatMessageDTOs(msgs), nil
}

func (s *chatServiceImpl) ListAllMessages(ctx context.Context, page, pageSize int) ([]*dto.ChatMessageDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	msgs, err := s.chatRepo.ListAllMessages(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toChatMessageDTOs(msgs), nil
}

// ReplyMessage 写入回复后通过 redis 频道通知该用户的在线连接
func (s *chatServiceImpl) ReplyMessage(ctx context.Context, adminID, messageID uint64, req *dto.ChatReplyDTO) (*dto.ChatMessageDTO, error) {
	msg, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrChatNotFound
	}

	if err = s.chatRepo.UpdateReply(ctx, messageID, req.Reply); err != nil {
		return nil, err
	}
	msg.Reply = &req.Reply
	msg.IsRead = true

	s.notifyUser(ctx, msg)
	return toChatMessageDTO(msg), nil
}

func (s *chatServiceImpl) MarkRead(ctx context.Context, messageID uint64) error {
	msg, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrChatNotFound
	}
	return s.chatRepo.MarkRead(ctx, messageID)
}

func (s *chatServiceImpl) DeleteMessage(ctx context.Context, actorID uint64, actorRole string, messageID uint64) error {
	msg, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrChatNotFound
	}
	if msg.UserID != actorID && actorRole != consts.RoleAdmin {
		return ErrChatNotFound
	}
	return s.chatRepo.DeleteMessage(ctx, messageID)
}

func (s *chatServiceImpl) notifyUser(ctx context.Context, msg *model.ChatMessage) {
	payload, err := json.Marshal(toChatMessageDTO(msg))
	if err != nil {
		slog.WarnContext(ctx, "聊天通知序列化失败", "err", err)
		return
	}
	channel := consts.ChatNotifyChannel + strconv.FormatUint(msg.UserID, 10)
	if err = redis.Publish(ctx, channel, payload); err != nil {
		slog.WarnContext(ctx, "聊天通知推送失败", "channel", channel, "err", err)
	}
}

func toChatMessageDTOs(msgs []*model.ChatMessage) []*dto.ChatMessageDTO {
	result := make([]*dto.ChatMessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, toChatMessageDTO(msg))
	}
	return result
}

func toChatMessageDTO(msg *model.ChatMessage) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Username:  msg.User.Username,
		Content:   msg.Content,
		Reply:     msg.Reply,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

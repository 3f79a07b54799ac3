package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/minio"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type CommentService interface {
	CreateComment(ctx context.Context, actorID uint64, actorRole string, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID uint64, actorRole string, commentID uint64, req *dto.CommentUpdateDTO) error
	DeleteComment(ctx context.Context, actorID uint64, actorRole string, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	statsRepo   repository.StatsRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	statsRepo repository.StatsRepo,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		statsRepo:   statsRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, actorID uint64, actorRole string, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	// 非 active 帖子仅作者与管理员可评论，对外一律按不存在处理
	if post.Status != consts.PostStatusActive &&
		post.UserID != actorID && actorRole != consts.RoleAdmin {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  actorID,
		Content: req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCommentCount(ctx, postID)
	s.recordActivity(ctx, "create", "comment", comment.ID, actorID)

	user, err := s.userRepo.GetUserById(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		comment.User = *user
	}
	return toCommentDTO(comment), nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	page, pageSize = normalizePage(page, pageSize)
	comments, err := s.commentRepo.ListCommentsByPost(ctx, postID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentDTO(comment))
	}
	return result, nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, actorID uint64, actorRole string, commentID uint64, req *dto.CommentUpdateDTO) error {
	comment, err := s.getOwnedComment(ctx, actorID, actorRole, commentID)
	if err != nil {
		return err
	}
	return s.commentRepo.UpdateCommentContent(ctx, comment.ID, req.Content)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID uint64, actorRole string, commentID uint64) error {
	comment, err := s.getOwnedComment(ctx, actorID, actorRole, commentID)
	if err != nil {
		return err
	}

	if err = s.commentRepo.DeleteComment(ctx, comment.ID); err != nil {
		return err
	}

	s.invalidateCommentCount(ctx, comment.PostID)
	s.recordActivity(ctx, "delete", "comment", comment.ID, actorID)
	return nil
}

// getOwnedComment 非作者且非管理员时按不存在处理，避免泄露评论归属
func (s *commentServiceImpl) getOwnedComment(ctx context.Context, actorID uint64, actorRole string, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != actorID && actorRole != consts.RoleAdmin {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *commentServiceImpl) invalidateCommentCount(ctx context.Context, postID uint64) {
	_ = redis.DeleteKey(ctx, consts.PostCommentKey+strconv.FormatUint(postID, 10))
}

func (s *commentServiceImpl) recordActivity(ctx context.Context, action, entity string, entityID, actorID uint64) {
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

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	avatar := comment.User.AvatarURL
	if avatar == "" {
		avatar = consts.DefaultAvatarURL
	}
	return &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		AvatarURL: minio.GetPublicURL(avatar),
	}
}

package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/repository"
	"context"
	"strconv"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, actorID uint64, actorRole string, postID uint64) (*dto.ToggleResultDTO, error)
	ToggleSave(ctx context.Context, actorID uint64, actorRole string, postID uint64) (*dto.ToggleResultDTO, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
}

func NewPostActionService(actionRepo repository.PostActionRepo, postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{actionRepo: actionRepo, postRepo: postRepo}
}

// ToggleLike 先尝试插入，撞唯一键说明已点赞则改为删除；
// 并发双写由复合主键兜底，计数始终从行内重算
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, actorID uint64, actorRole string, postID uint64) (*dto.ToggleResultDTO, error) {
	if err := s.ensurePostVisible(ctx, actorID, actorRole, postID); err != nil {
		return nil, err
	}

	action := "liked"
	err := s.actionRepo.CreateLike(ctx, &model.Like{UserID: actorID, PostID: postID})
	if err != nil {
		if !isDuplicateKeyErr(err) {
			return nil, err
		}
		affected, err := s.actionRepo.DeleteLike(ctx, actorID, postID)
		if err != nil {
			return nil, err
		}
		if affected > 0 {
			action = "unliked"
		}
	}

	s.invalidateLikeCount(ctx, postID)

	count, err := s.actionRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleResultDTO{Action: action, LikeCount: count}, nil
}

func (s *postActionServiceImpl) ToggleSave(ctx context.Context, actorID uint64, actorRole string, postID uint64) (*dto.ToggleResultDTO, error) {
	if err := s.ensurePostVisible(ctx, actorID, actorRole, postID); err != nil {
		return nil, err
	}

	action := "saved"
	err := s.actionRepo.CreateSave(ctx, &model.SavedPost{UserID: actorID, PostID: postID})
	if err != nil {
		if !isDuplicateKeyErr(err) {
			return nil, err
		}
		affected, err := s.actionRepo.DeleteSave(ctx, actorID, postID)
		if err != nil {
			return nil, err
		}
		if affected > 0 {
			action = "unsaved"
		}
	}

	return &dto.ToggleResultDTO{Action: action}, nil
}

// ensurePostVisible 非 active 帖子仅作者与管理员可操作，对外一律按不存在处理
func (s *postActionServiceImpl) ensurePostVisible(ctx context.Context, actorID uint64, actorRole string, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Status != consts.PostStatusActive &&
		post.UserID != actorID && actorRole != consts.RoleAdmin {
		return ErrPostNotFound
	}
	return nil
}

func (s *postActionServiceImpl) invalidateLikeCount(ctx context.Context, postID uint64) {
	_ = redis.DeleteKey(ctx, consts.PostLikeKey+strconv.FormatUint(postID, 10))
}

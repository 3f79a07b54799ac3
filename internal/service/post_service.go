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

const counterCacheExpiration = 24 * time.Hour

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID uint64, viewerRole string, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, viewerID uint64, query *dto.PostListQuery) ([]*dto.PostDTO, error)
	ListOwnPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.PostDTO, error)
	ListSavedPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, actorID uint64, actorRole string, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, actorID uint64, actorRole string, postID uint64) error

	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	GetPostCommentCount(ctx context.Context, postID uint64) (int64, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	tagRepo      repository.TagRepo
	categoryRepo repository.CategoryRepo
	actionRepo   repository.PostActionRepo
	commentRepo  repository.CommentRepo
	statsRepo    repository.StatsRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	tagRepo repository.TagRepo,
	categoryRepo repository.CategoryRepo,
	actionRepo repository.PostActionRepo,
	commentRepo repository.CommentRepo,
	statsRepo repository.StatsRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		actionRepo:   actionRepo,
		commentRepo:  commentRepo,
		statsRepo:    statsRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	tagIDs, err := s.tagRepo.FindOrCreateByNames(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = consts.PostStatusActive
	}

	post := &model.Post{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
		Status:     status,
		ImageURL:   req.ImageURL,
	}

	if err = s.postRepo.CreatePost(ctx, post, tagIDs); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "create", "post", post.ID, userID)

	return s.GetPost(ctx, userID, "", post.ID)
}

func (s *postServiceImpl) GetPost(ctx context.Context, viewerID uint64, viewerRole string, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	// 非 active 帖子仅作者与管理员可见；对外统一表现为不存在
	if post.Status != consts.PostStatusActive &&
		post.UserID != viewerID && viewerRole != consts.RoleAdmin {
		return nil, ErrPostNotFound
	}

	return s.toPostDTO(ctx, viewerID, post)
}

func (s *postServiceImpl) ListPosts(ctx context.Context, viewerID uint64, query *dto.PostListQuery) ([]*dto.PostDTO, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	posts, err := s.postRepo.ListPosts(ctx, &repository.PostFilter{
		CategoryID: query.CategoryID,
		TagID:      query.TagID,
		UserID:     query.UserID,
		Status:     consts.PostStatusActive,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, err
	}

	return s.toPostDTOs(ctx, viewerID, posts)
}

func (s *postServiceImpl) ListOwnPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.PostDTO, error) {
	page, pageSize = normalizePage(page, pageSize)

	posts, err := s.postRepo.ListPostsByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return s.toPostDTOs(ctx, userID, posts)
}

func (s *postServiceImpl) ListSavedPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.PostDTO, error) {
	page, pageSize = normalizePage(page, pageSize)

	postIDs, err := s.actionRepo.GetSavedPostIDs(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if len(postIDs) == 0 {
		return []*dto.PostDTO{}, nil
	}

	posts, err := s.postRepo.ListPostsByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, userID, posts)
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, actorID uint64, actorRole string, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	post, err := s.getOwnedPost(ctx, actorID, actorRole, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		post.CategoryID = *req.CategoryID
	}

	var tagIDs []uint64
	if req.Tags != nil {
		tagIDs, err = s.tagRepo.FindOrCreateByNames(ctx, req.Tags)
		if err != nil {
			return nil, err
		}
	}

	if err = s.postRepo.UpdatePost(ctx, post, tagIDs); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, actorID, actorRole, postID)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, actorID uint64, actorRole string, postID uint64) error {
	post, err := s.getOwnedPost(ctx, actorID, actorRole, postID)
	if err != nil {
		return err
	}

	if err = s.postRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}

	s.invalidateCounters(ctx, post.ID)
	s.recordActivity(ctx, "delete", "post", post.ID, actorID)
	return nil
}

// GetPostLikeCount 点赞数实时聚合，带失效式缓存
func (s *postServiceImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	key := consts.PostLikeKey + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.actionRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, counterCacheExpiration)
	return realCount, nil
}

func (s *postServiceImpl) GetPostCommentCount(ctx context.Context, postID uint64) (int64, error) {
	key := consts.PostCommentKey + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, counterCacheExpiration)
	return realCount, nil
}

// getOwnedPost 所有权检查：作者或 admin；其余情况一律按不存在处理
func (s *postServiceImpl) getOwnedPost(ctx context.Context, actorID uint64, actorRole string, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != actorID && actorRole != consts.RoleAdmin {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postServiceImpl) toPostDTOs(ctx context.Context, viewerID uint64, posts []*model.Post) ([]*dto.PostDTO, error) {
	if len(posts) == 0 {
		return []*dto.PostDTO{}, nil
	}

	postIDs := make([]uint64, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
	}

	likedSet := make(map[uint64]struct{})
	savedSet := make(map[uint64]struct{})
	if viewerID > 0 {
		liked, err := s.actionRepo.GetLikedPostIDs(ctx, viewerID, postIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range liked {
			likedSet[id] = struct{}{}
		}
		saved, err := s.actionRepo.GetSavedIDsIn(ctx, viewerID, postIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range saved {
			savedSet[id] = struct{}{}
		}
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO, err := s.assemblePostDTO(ctx, post)
		if err != nil {
			return nil, err
		}
		if _, ok := likedSet[post.ID]; ok {
			postDTO.IsLiked = true
		}
		if _, ok := savedSet[post.ID]; ok {
			postDTO.IsSaved = true
		}
		result = append(result, postDTO)
	}
	return result, nil
}

func (s *postServiceImpl) toPostDTO(ctx context.Context, viewerID uint64, post *model.Post) (*dto.PostDTO, error) {
	postDTO, err := s.assemblePostDTO(ctx, post)
	if err != nil {
		return nil, err
	}

	// 匿名访问时观察者字段保持 false
	if viewerID > 0 {
		if postDTO.IsLiked, err = s.actionRepo.CheckLikeExists(ctx, viewerID, post.ID); err != nil {
			return nil, err
		}
		if postDTO.IsSaved, err = s.actionRepo.CheckSaveExists(ctx, viewerID, post.ID); err != nil {
			return nil, err
		}
	}

	return postDTO, nil
}

func (s *postServiceImpl) assemblePostDTO(ctx context.Context, post *model.Post) (*dto.PostDTO, error) {
	avatar := post.User.AvatarURL
	if avatar == "" {
		avatar = consts.DefaultAvatarURL
	}

	tags := make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, tag.Name)
	}

	likeCount, err := s.GetPostLikeCount(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.GetPostCommentCount(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PostDTO{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		Status:       post.Status,
		ImageURL:     minio.GetPublicURL(post.ImageURL),
		CreatedAt:    post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    post.UpdatedAt.Format(time.RFC3339),
		UserID:       post.UserID,
		Username:     post.User.Username,
		AvatarURL:    minio.GetPublicURL(avatar),
		CategoryID:   post.CategoryID,
		CategoryName: post.Category.Name,
		Tags:         tags,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}, nil
}

func (s *postServiceImpl) invalidateCounters(ctx context.Context, postID uint64) {
	id := strconv.FormatUint(postID, 10)
	_ = redis.DeleteKey(ctx, consts.PostLikeKey+id)
	_ = redis.DeleteKey(ctx, consts.PostCommentKey+id)
}

func (s *postServiceImpl) recordActivity(ctx context.Context, action, entity string, entityID, actorID uint64) {
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

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/minio"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]*dto.UserDTO, error)
	ChangeUserRole(ctx context.Context, adminID, userID uint64, req *dto.ChangeRoleDTO) error
	DeleteUser(ctx context.Context, adminID, userID uint64) error
}

type adminServiceImpl struct {
	userRepo  repository.UserRepo
	roleRepo  repository.RoleRepo
	statsRepo repository.StatsRepo
}

func NewAdminService(userRepo repository.UserRepo, roleRepo repository.RoleRepo, statsRepo repository.StatsRepo) AdminService {
	return &adminServiceImpl{userRepo: userRepo, roleRepo: roleRepo, statsRepo: statsRepo}
}

// GetStats 各表计数并行聚合
func (s *adminServiceImpl) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	stats := &dto.StatsDTO{}
	g, gctx := errgroup.WithContext(ctx)

	countInto := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	countInto(&stats.Users, s.statsRepo.CountUsers)
	countInto(&stats.Posts, s.statsRepo.CountPosts)
	countInto(&stats.Comments, s.statsRepo.CountComments)
	countInto(&stats.Likes, s.statsRepo.CountLikes)
	countInto(&stats.Categories, s.statsRepo.CountCategories)
	countInto(&stats.Tags, s.statsRepo.CountTags)
	countInto(&stats.ChatMessages, s.statsRepo.CountChatMessages)

	var roleCounts []repository.RoleCount
	g.Go(func() error {
		var err error
		roleCounts, err = s.statsRepo.CountUsersByRole(gctx)
		return err
	})

	var activities []*model.ActivityLog
	g.Go(func() error {
		var err error
		activities, err = s.statsRepo.ListRecentActivities(gctx, consts.ActivityFeedLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 所有已知角色补零，避免前端缺键
	stats.UsersByRole = map[string]int64{
		consts.RoleAdmin:    0,
		consts.RoleSubAdmin: 0,
		consts.RoleUser:     0,
	}
	for _, rc := range roleCounts {
		stats.UsersByRole[rc.Name] = rc.Count
	}

	stats.RecentActivities = make([]dto.ActivityDTO, 0, len(activities))
	for _, entry := range activities {
		stats.RecentActivities = append(stats.RecentActivities, dto.ActivityDTO{
			Action:    entry.Action,
			Entity:    entry.Entity,
			EntityID:  entry.EntityID,
			ActorID:   entry.ActorID,
			Detail:    entry.Detail,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return stats, nil
}

func (s *adminServiceImpl) ListUsers(ctx context.Context, page, pageSize int) ([]*dto.UserDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	users, err := s.userRepo.ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		avatar := user.AvatarURL
		if avatar == "" {
			avatar = consts.DefaultAvatarURL
		}
		createdAt := user.CreatedAt
		result = append(result, &dto.UserDTO{
			UserID:    user.ID,
			Email:     user.Email,
			Username:  user.Username,
			AvatarURL: minio.GetPublicURL(avatar),
			Role:      user.Role.Name,
			CreatedAt: &createdAt,
		})
	}
	return result, nil
}

func (s *adminServiceImpl) ChangeUserRole(ctx context.Context, adminID, userID uint64, req *dto.ChangeRoleDTO) error {
	role, err := s.roleRepo.GetRoleByName(ctx, req.Role)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleInvalid
	}

	affected, err := s.userRepo.UpdateUserRole(ctx, userID, role.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	s.recordActivity(ctx, "role_change", "user", userID, adminID, req.Role)
	return nil
}

func (s *adminServiceImpl) DeleteUser(ctx context.Context, adminID, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = s.userRepo.DeleteUserCascade(ctx, userID); err != nil {
		return err
	}

	s.recordActivity(ctx, "delete", "user", userID, adminID, user.Username)
	return nil
}

func (s *adminServiceImpl) recordActivity(ctx context.Context, action, entity string, entityID, actorID uint64, detail string) {
	err := s.statsRepo.CreateActivity(ctx, &model.ActivityLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		ActorID:  actorID,
		Detail:   detail,
	})
	if err != nil {
		log.WarnContext(ctx, "Failed to record activity", "entity", entity, "err", err)
	}
}

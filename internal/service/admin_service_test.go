package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsZeroFillsRoles(t *testing.T) {
	statsRepo := newMemStatsRepo()
	statsRepo.counts["users"] = 12
	statsRepo.counts["posts"] = 34
	statsRepo.roleCounts = []repository.RoleCount{{Name: consts.RoleUser, Count: 11}, {Name: consts.RoleAdmin, Count: 1}}

	svc := NewAdminService(newMemUserRepo(), newMemRoleRepo(), statsRepo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, stats.Users)
	assert.EqualValues(t, 34, stats.Posts)

	// 没有成员的角色也要出现在结果里
	assert.EqualValues(t, 11, stats.UsersByRole[consts.RoleUser])
	assert.EqualValues(t, 1, stats.UsersByRole[consts.RoleAdmin])
	assert.EqualValues(t, 0, stats.UsersByRole[consts.RoleSubAdmin])
}

func TestGetStatsRecentActivities(t *testing.T) {
	statsRepo := newMemStatsRepo()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < consts.ActivityFeedLimit+5; i++ {
		require.NoError(t, statsRepo.CreateActivity(context.Background(), &model.ActivityLog{
			Action:    "create",
			Entity:    "post",
			EntityID:  uint64(i + 1),
			ActorID:   1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	svc := NewAdminService(newMemUserRepo(), newMemRoleRepo(), statsRepo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.RecentActivities, consts.ActivityFeedLimit)
	// 新的在前
	assert.EqualValues(t, consts.ActivityFeedLimit+5, stats.RecentActivities[0].EntityID)
}

func TestChangeUserRole(t *testing.T) {
	userRepo := newMemUserRepo()
	statsRepo := newMemStatsRepo()
	svc := NewAdminService(userRepo, newMemRoleRepo(), statsRepo)

	user := &model.User{Email: "u@example.com", Username: "u", Password: "x", RoleID: 3}
	require.NoError(t, userRepo.CreateUser(context.Background(), user))

	require.NoError(t, svc.ChangeUserRole(context.Background(), 99, user.ID, &dto.ChangeRoleDTO{Role: consts.RoleSubAdmin}))

	stored, err := userRepo.GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.RoleID)

	require.Len(t, statsRepo.activities, 1)
	assert.Equal(t, "role_change", statsRepo.activities[0].Action)

	err = svc.ChangeUserRole(context.Background(), 99, 9999, &dto.ChangeRoleDTO{Role: consts.RoleUser})
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.ChangeUserRole(context.Background(), 99, user.ID, &dto.ChangeRoleDTO{Role: "superuser"})
	assert.ErrorIs(t, err, ErrRoleInvalid)
}

func TestAdminDeleteUser(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := NewAdminService(userRepo, newMemRoleRepo(), newMemStatsRepo())

	user := &model.User{Email: "gone@example.com", Username: "gone", Password: "x", RoleID: 3}
	require.NoError(t, userRepo.CreateUser(context.Background(), user))

	require.NoError(t, svc.DeleteUser(context.Background(), 99, user.ID))

	stored, err := userRepo.GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 99, user.ID), ErrUserNotFound)
}

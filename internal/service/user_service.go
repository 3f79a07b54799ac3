package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/minio"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, updDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	roleRepo  repository.RoleRepo
	statsRepo repository.StatsRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo, statsRepo repository.StatsRepo) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		statsRepo: statsRepo,
	}
}

// Register 注册并直接签发令牌。角色缺省为 user
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.TokenDTO, error) {
	if existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailExist
	}
	if existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetRoleByName(ctx, consts.RoleUser)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleInvalid
	}

	user := &model.User{
		Email:     regDTO.Email,
		Username:  regDTO.Username,
		Password:  passwordHash,
		AvatarURL: consts.DefaultAvatarURL,
		RoleID:    role.ID,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册同一邮箱/用户名时由唯一索引兜底
		if isDuplicateKeyErr(err) {
			return nil, ErrEmailExist
		}
		return nil, err
	}

	s.recordActivity(ctx, "create", "user", user.ID, user.ID, "")

	return s.issueToken(user, role.Name)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.issueToken(user, user.Role.Name)
}

// Logout 将令牌签名写入黑名单，TTL 与令牌有效期一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, true, security.TokenTTL())
}

// GetUserInfo 公开主页信息，不含邮箱
func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user, false), nil
}

// GetProfile 当前登录用户的完整信息
func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user, true), nil
}

// UpdateProfile 更新用户名/密码/头像。改密码需校验旧密码
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, updDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updated := &model.User{ID: id}

	if updDTO.Username != nil && *updDTO.Username != user.Username {
		existing, err := s.userRepo.GetUserByUsername(ctx, *updDTO.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameExist
		}
		updated.Username = *updDTO.Username
	}

	if updDTO.NewPassword != nil {
		if updDTO.OldPassword == nil {
			return nil, ErrPasswordIncorrect
		}
		if err = security.CheckPasswordHash(*updDTO.OldPassword, user.Password); err != nil {
			return nil, ErrPasswordIncorrect
		}
		passwordHash, err := security.HashPassword(*updDTO.NewPassword)
		if err != nil {
			return nil, err
		}
		updated.Password = passwordHash
	}

	if updDTO.AvatarURL != nil {
		updated.AvatarURL = *updDTO.AvatarURL
	}

	if err = s.userRepo.UpdateUser(ctx, updated); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	return s.GetProfile(ctx, id)
}

func (s *UserServiceImpl) issueToken(user *model.User, roleName string) (*dto.TokenDTO, error) {
	avatar := minio.GetPublicURL(user.AvatarURL)
	token, err := security.GenerateToken(user.ID, roleName, user.Username, avatar, user.Email)
	if err != nil {
		return nil, err
	}

	userDTO := s.toUserDTO(user, true)
	userDTO.Role = roleName

	return &dto.TokenDTO{Token: token, User: *userDTO}, nil
}

func (s *UserServiceImpl) toUserDTO(user *model.User, withEmail bool) *dto.UserDTO {
	avatar := user.AvatarURL
	if avatar == "" {
		avatar = consts.DefaultAvatarURL
	}

	userDTO := &dto.UserDTO{
		UserID:    user.ID,
		Username:  user.Username,
		AvatarURL: minio.GetPublicURL(avatar),
		Role:      user.Role.Name,
		CreatedAt: &user.CreatedAt,
	}
	if withEmail {
		userDTO.Email = user.Email
	}
	return userDTO
}

func (s *UserServiceImpl) recordActivity(ctx context.Context, action, entity string, entityID, actorID uint64, detail string) {
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

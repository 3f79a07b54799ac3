package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO 用户
type UserDTO struct {
	UserID    uint64     `json:"user_id"`
	Email     string     `json:"email,omitempty"`
	Username  string     `json:"username"`
	AvatarURL string     `json:"avatar_url"`
	Role      string     `json:"role,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UpdateProfileDTO 更新个人资料；空字段保持不变
type UpdateProfileDTO struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=20"`
	OldPassword *string `json:"old_password" validate:"omitempty,min=6,max=64"`
	NewPassword *string `json:"new_password" validate:"omitempty,min=6,max=64"`
	AvatarURL   *string `json:"avatar_url"`
}

// TokenDTO 登录/注册返回
type TokenDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

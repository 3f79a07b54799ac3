package security

import (
	"Inkstone/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultSecret      = "inkstone-dev-secret"
	defaultExpireHours = 24
)

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID    uint64 `json:"user_id"`
	Role      string `json:"role"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if config.Cfg != nil && config.Cfg.JWT.Secret != "" {
		return []byte(config.Cfg.JWT.Secret)
	}
	return []byte(defaultSecret)
}

func jwtExpiration() time.Duration {
	if config.Cfg != nil && config.Cfg.JWT.ExpireHours > 0 {
		return time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	}
	return defaultExpireHours * time.Hour
}

// TokenTTL 返回配置的令牌有效期；注销黑名单须与其保持同寿命
func TokenTTL() time.Duration {
	return jwtExpiration()
}

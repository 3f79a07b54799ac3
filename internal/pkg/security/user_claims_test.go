package security

import (
	"Inkstone/internal/api/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenTTLFollowsConfig(t *testing.T) {
	orig := config.Cfg
	defer func() { config.Cfg = orig }()

	config.Cfg = nil
	assert.Equal(t, defaultExpireHours*time.Hour, TokenTTL())

	config.Cfg = &config.Config{JWT: config.JWTConfig{ExpireHours: 48}}
	assert.Equal(t, 48*time.Hour, TokenTTL(), "注销黑名单的过期时间必须跟随配置的令牌有效期")
}

package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserService 按真实服务的约定返回：公开信息不含邮箱，本人信息含邮箱
type stubUserService struct{}

var _ service.UserService = (*stubUserService)(nil)

func (s *stubUserService) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.TokenDTO, error) {
	return nil, service.UnExpectedError
}

func (s *stubUserService) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	return nil, service.UnExpectedError
}

func (s *stubUserService) Logout(ctx context.Context, token string) error {
	return nil
}

func (s *stubUserService) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	return &dto.UserDTO{UserID: id, Username: "alice"}, nil
}

func (s *stubUserService) GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	return &dto.UserDTO{UserID: id, Username: "alice", Email: "alice@example.com"}, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id uint64, updDTO *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	return s.GetProfile(ctx, id)
}

func newUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&stubUserService{})

	r := gin.New()
	users := r.Group("/api/users")
	users.GET("/me", func(c *gin.Context) {
		c.Set("user_id", uint64(1))
		c.Next()
	}, h.GetProfile)
	users.GET("/:user_id", h.GetUserInfo)
	return r
}

func TestPublicUserRouteOmitsEmail(t *testing.T) {
	r := newUserRouter()

	// 匿名访问他人主页，响应体内不得出现邮箱
	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "email")
	assert.NotContains(t, w.Body.String(), "alice@example.com")

	var env struct {
		Code int         `json:"code"`
		Data dto.UserDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "alice", env.Data.Username)
	assert.Empty(t, env.Data.Email)
}

func TestOwnProfileRouteIncludesEmail(t *testing.T) {
	r := newUserRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "alice@example.com"))
}

package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func parsePathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var createDTO dto.PostCreateDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), c.GetUint64("user_id"), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	posts, err := s.postSvc.ListPosts(c.Request.Context(), c.GetUint64("user_id"), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// ListOwnPosts 当前用户的全部帖子，含草稿与下线帖
func (s *PostHandler) ListOwnPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	posts, err := s.postSvc.ListOwnPosts(c.Request.Context(), c.GetUint64("user_id"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListSavedPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	posts, err := s.postSvc.ListSavedPosts(c.Request.Context(), c.GetUint64("user_id"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	var updateDTO dto.PostUpdateDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	err := s.postSvc.DeletePost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

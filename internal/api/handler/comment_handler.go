package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	var createDTO dto.CommentCreateDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parsePathID(c, "comment_id")
	if !ok {
		return
	}
	var updateDTO dto.CommentUpdateDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.commentSvc.UpdateComment(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), commentID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parsePathID(c, "comment_id")
	if !ok {
		return
	}
	err := s.commentSvc.DeleteComment(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

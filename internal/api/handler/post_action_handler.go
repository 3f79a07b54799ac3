package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	result, err := s.actionSvc.ToggleLike(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) ToggleSave(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	result, err := s.actionSvc.ToggleSave(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

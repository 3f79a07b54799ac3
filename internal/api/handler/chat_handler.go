package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatSvc service.ChatService
}

func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

func (s *ChatHandler) SendMessage(c *gin.Context) {
	var sendDTO dto.ChatSendDTO
	err := c.ShouldBind(&sendDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&sendDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	msg, err := s.chatSvc.SendMessage(c.Request.Context(), c.GetUint64("user_id"), &sendDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

func (s *ChatHandler) ListOwnMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	msgs, err := s.chatSvc.ListOwnMessages(c.Request.Context(), c.GetUint64("user_id"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msgs)
}

// ListAllMessages 管理端查看全部用户消息
func (s *ChatHandler) ListAllMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	msgs, err := s.chatSvc.ListAllMessages(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msgs)
}

func (s *ChatHandler) ReplyMessage(c *gin.Context) {
	messageID, ok := parsePathID(c, "message_id")
	if !ok {
		return
	}
	var replyDTO dto.ChatReplyDTO
	err := c.ShouldBind(&replyDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&replyDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	msg, err := s.chatSvc.ReplyMessage(c.Request.Context(), c.GetUint64("user_id"), messageID, &replyDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

func (s *ChatHandler) MarkRead(c *gin.Context) {
	messageID, ok := parsePathID(c, "message_id")
	if !ok {
		return
	}
	if err := s.chatSvc.MarkRead(c.Request.Context(), messageID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ChatHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := parsePathID(c, "message_id")
	if !ok {
		return
	}
	err := s.chatSvc.DeleteMessage(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), messageID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

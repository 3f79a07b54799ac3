package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (s *AdminHandler) GetStats(c *gin.Context) {
	stats, err := s.adminSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	users, err := s.adminSvc.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *AdminHandler) ChangeUserRole(c *gin.Context) {
	userID, ok := parsePathID(c, "user_id")
	if !ok {
		return
	}
	var roleDTO dto.ChangeRoleDTO
	err := c.ShouldBind(&roleDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&roleDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.adminSvc.ChangeUserRole(c.Request.Context(), c.GetUint64("user_id"), userID, &roleDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parsePathID(c, "user_id")
	if !ok {
		return
	}
	// 管理员不能删除自己
	if userID == c.GetUint64("user_id") {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err := s.adminSvc.DeleteUser(c.Request.Context(), c.GetUint64("user_id"), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

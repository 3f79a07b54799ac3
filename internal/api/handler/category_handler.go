package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

func (s *CategoryHandler) CreateCategory(c *gin.Context) {
	var createDTO dto.CategoryCreateDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	category, err := s.categorySvc.CreateCategory(c.Request.Context(), c.GetUint64("user_id"), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parsePathID(c, "category_id")
	if !ok {
		return
	}
	var updateDTO dto.CategoryCreateDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	category, err := s.categorySvc.UpdateCategory(c.Request.Context(), categoryID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parsePathID(c, "category_id")
	if !ok {
		return
	}
	err := s.categorySvc.DeleteCategory(c.Request.Context(), c.GetUint64("user_id"), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

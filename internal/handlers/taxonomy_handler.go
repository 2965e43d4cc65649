package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves job categories and job levels. The two resources
// share a shape (id + title) so they share a handler.
type TaxonomyHandler struct {
	*BaseHandler
	categoryService services.CategoryService
	levelService    services.LevelService
}

func NewTaxonomyHandler(base *BaseHandler, categoryService services.CategoryService, levelService services.LevelService) *TaxonomyHandler {
	return &TaxonomyHandler{
		BaseHandler:     base,
		categoryService: categoryService,
		levelService:    levelService,
	}
}

func (h *TaxonomyHandler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/job-categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:categoryId", h.GetCategory)
	}
	categoriesAdmin := r.Group("/job-categories")
	categoriesAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		categoriesAdmin.POST("", h.CreateCategory)
		categoriesAdmin.PUT("/:categoryId", h.UpdateCategory)
		categoriesAdmin.DELETE("/:categoryId", h.DeleteCategory)
	}

	levels := r.Group("/job-levels")
	{
		levels.GET("", h.ListLevels)
		levels.GET("/:levelId", h.GetLevel)
	}
	levelsAdmin := r.Group("/job-levels")
	levelsAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		levelsAdmin.POST("", h.CreateLevel)
		levelsAdmin.PUT("/:levelId", h.UpdateLevel)
		levelsAdmin.DELETE("/:levelId", h.DeleteLevel)
	}
}

// --- Categories ---

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	categories, total, err := h.categoryService.ListCategories(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondPaged(c, categories, page, pageSize, total)
}

func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(h.GetDB(c), c.Param("categoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a job category
// @Tags job-categories
// @Accept json
// @Produce json
// @Param category body dto.TitleRequest true "Category payload"
// @Success 201 {object} models.JobCategory
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /job-categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req dto.TitleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Job category created successfully",
		"category": category,
	})
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	var req dto.TitleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(h.GetDB(c), c.Param("categoryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Job category updated successfully",
		"category": category,
	})
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")
	if err := h.categoryService.DeleteCategory(h.GetDB(c), categoryID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job category deleted successfully",
		"id":      categoryID,
	})
}

// --- Levels ---

func (h *TaxonomyHandler) ListLevels(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	levels, total, err := h.levelService.ListLevels(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondPaged(c, levels, page, pageSize, total)
}

func (h *TaxonomyHandler) GetLevel(c *gin.Context) {
	level, err := h.levelService.GetLevel(h.GetDB(c), c.Param("levelId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, level)
}

func (h *TaxonomyHandler) CreateLevel(c *gin.Context) {
	var req dto.TitleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	level, err := h.levelService.CreateLevel(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job level created successfully",
		"level":   level,
	})
}

func (h *TaxonomyHandler) UpdateLevel(c *gin.Context) {
	var req dto.TitleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	level, err := h.levelService.UpdateLevel(h.GetDB(c), c.Param("levelId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job level updated successfully",
		"level":   level,
	})
}

func (h *TaxonomyHandler) DeleteLevel(c *gin.Context) {
	levelID := c.Param("levelId")
	if err := h.levelService.DeleteLevel(h.GetDB(c), levelID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job level deleted successfully",
		"id":      levelID,
	})
}

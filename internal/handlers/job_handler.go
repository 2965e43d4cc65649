package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes. Optional auth so admins see unapproved postings in search.
	public := r.Group("/jobs")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.SearchJobs)
		public.GET("/:jobId", h.GetJob)
	}

	// Any authenticated user
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("", h.CreateJob)
		jobs.POST("/:jobId/save", h.SaveJob)
	}

	// Admin only
	admin := r.Group("/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PUT("/:jobId", h.UpdateJob)
		admin.DELETE("/:jobId", h.DeleteJob)
		admin.PUT("/:jobId/approve", h.ApproveJob)
		admin.DELETE("/:jobId/reject", h.RejectJob)
	}
}

// SearchJobs godoc
// @Summary List job postings
// @Description Paginated job search. Non-admin callers only see approved postings.
// @Tags jobs
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param levelId query string false "Level ID"
// @Param companyName query string false "Company name substring"
// @Param title query string false "Title substring"
// @Param pageIndex query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /jobs [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var criteria dto.SearchJobsRequest
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	jobs, total, err := h.jobService.SearchJobs(h.GetDB(c), criteria, middleware.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondPaged(c, jobs, criteria.Page, criteria.PageSize, total)
}

// GetJob godoc
// @Summary Get a job posting by ID
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a job posting
// @Description Postings by admins go live immediately; others await approval.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job payload"
// @Success 201 {object} models.Job
// @Failure 422 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, middleware.IsAdmin(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     job,
	})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("jobId")
	if err := h.jobService.DeleteJob(h.GetDB(c), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
		"id":      jobID,
	})
}

// ApproveJob godoc
// @Summary Approve a pending job posting
// @Description Marks the posting approved. Approving an already approved posting is a no-op success.
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId}/approve [put]
func (h *JobHandler) ApproveJob(c *gin.Context) {
	job, err := h.jobService.ApproveJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job approved successfully",
		"job":     job,
	})
}

func (h *JobHandler) RejectJob(c *gin.Context) {
	jobID := c.Param("jobId")
	if err := h.jobService.RejectJob(h.GetDB(c), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job rejected and removed",
		"id":      jobID,
	})
}

// SaveJob godoc
// @Summary Save a job for the authenticated user
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 201 {object} map[string]string
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId}/save [post]
func (h *JobHandler) SaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID := c.Param("jobId")
	if err := h.jobService.SaveJob(h.GetDB(c), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job saved successfully",
		"id":      jobID,
	})
}

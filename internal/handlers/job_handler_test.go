package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("admin-1", "admin")
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("user-1", "user")
	require.NoError(t, err)
	return token
}

// stubJobService is a canned JobService for handler tests. The DB session is
// a typed nil since no storage is touched.
type stubJobService struct {
	jobs       map[string]*models.Job
	saved      map[string]bool
	lastSearch struct {
		criteria dto.SearchJobsRequest
		isAdmin  bool
	}
}

func newStubJobService() *stubJobService {
	return &stubJobService{
		jobs:  make(map[string]*models.Job),
		saved: make(map[string]bool),
	}
}

func (s *stubJobService) GetJob(db *gorm.DB, id string) (*models.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

func (s *stubJobService) SearchJobs(db *gorm.DB, criteria dto.SearchJobsRequest, isAdmin bool) ([]models.Job, int64, error) {
	s.lastSearch.criteria = criteria
	s.lastSearch.isAdmin = isAdmin
	var out []models.Job
	for _, job := range s.jobs {
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (s *stubJobService) CreateJob(db *gorm.DB, creatorID string, isAdmin bool, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{Title: req.Title, IsApproved: isAdmin}
	job.ID = "job-new"
	if creatorID != "" {
		job.CreatedBy = &creatorID
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobService) UpdateJob(db *gorm.DB, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	job.Title = req.Title
	return job, nil
}

func (s *stubJobService) DeleteJob(db *gorm.DB, id string) error {
	if _, ok := s.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *stubJobService) ApproveJob(db *gorm.DB, id string) (*models.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	job.IsApproved = true
	return job, nil
}

func (s *stubJobService) RejectJob(db *gorm.DB, id string) error {
	if _, ok := s.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *stubJobService) SaveJob(db *gorm.DB, userID, jobID string) error {
	if _, ok := s.jobs[jobID]; !ok {
		return apperrors.ErrJobNotFound
	}
	key := userID + "/" + jobID
	if s.saved[key] {
		return apperrors.ErrJobAlreadySaved
	}
	s.saved[key] = true
	return nil
}

func newJobTestRouter(svc *stubJobService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	base := NewBaseHandler(validator.New())
	handler := NewJobHandler(base, svc)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetJobNotFound(t *testing.T) {
	router := newJobTestRouter(newStubJobService())

	w := doRequest(router, http.MethodGet, "/api/v1/jobs/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Job not found", body["error"]["message"])
}

func TestSearchJobsEmptyIsOK(t *testing.T) {
	router := newJobTestRouter(newStubJobService())

	w := doRequest(router, http.MethodGet, "/api/v1/jobs", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pagination dto.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(0), body.Pagination.TotalCount)
	assert.Equal(t, 1, body.Pagination.CurrentPage)
	assert.Equal(t, 20, body.Pagination.PageSize)
}

func TestSearchJobsPaginationParams(t *testing.T) {
	svc := newStubJobService()
	router := newJobTestRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/v1/jobs?pageIndex=3&pageSize=5&title=engineer", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.lastSearch.criteria.Page)
	assert.Equal(t, 5, svc.lastSearch.criteria.PageSize)
	assert.Equal(t, "engineer", svc.lastSearch.criteria.Title)
}

func TestSearchJobsAdminSeesPending(t *testing.T) {
	svc := newStubJobService()
	router := newJobTestRouter(svc)

	doRequest(router, http.MethodGet, "/api/v1/jobs", "", "")
	assert.False(t, svc.lastSearch.isAdmin)

	doRequest(router, http.MethodGet, "/api/v1/jobs", adminToken(t), "")
	assert.True(t, svc.lastSearch.isAdmin)
}

func TestCreateJobRequiresAuth(t *testing.T) {
	router := newJobTestRouter(newStubJobService())

	w := doRequest(router, http.MethodPost, "/api/v1/jobs", "", `{"title":"Backend Engineer"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateJobValidation(t *testing.T) {
	router := newJobTestRouter(newStubJobService())

	w := doRequest(router, http.MethodPost, "/api/v1/jobs", userToken(t), `{"title":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body["error"]["details"])
}

func TestCreateJobAsUser(t *testing.T) {
	svc := newStubJobService()
	router := newJobTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/jobs", userToken(t), `{"title":"Backend Engineer"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	job := svc.jobs["job-new"]
	require.NotNil(t, job)
	assert.False(t, job.IsApproved)
}

func TestApproveJobAuthz(t *testing.T) {
	svc := newStubJobService()
	svc.jobs["j1"] = &models.Job{Title: "Pending"}
	router := newJobTestRouter(svc)

	w := doRequest(router, http.MethodPut, "/api/v1/jobs/j1/approve", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing principal")

	w = doRequest(router, http.MethodPut, "/api/v1/jobs/j1/approve", userToken(t), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "insufficient role")
	assert.False(t, svc.jobs["j1"].IsApproved)

	w = doRequest(router, http.MethodPut, "/api/v1/jobs/j1/approve", adminToken(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.jobs["j1"].IsApproved)

	// Second approval still succeeds.
	w = doRequest(router, http.MethodPut, "/api/v1/jobs/j1/approve", adminToken(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRejectJobDeletesRow(t *testing.T) {
	svc := newStubJobService()
	svc.jobs["j1"] = &models.Job{Title: "Pending"}
	router := newJobTestRouter(svc)

	w := doRequest(router, http.MethodDelete, "/api/v1/jobs/j1/reject", adminToken(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, svc.jobs, "j1")

	w = doRequest(router, http.MethodDelete, "/api/v1/jobs/j1/reject", adminToken(t), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveJobConflictStatus(t *testing.T) {
	svc := newStubJobService()
	svc.jobs["j1"] = &models.Job{Title: "Backend Engineer", IsApproved: true}
	router := newJobTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/jobs/j1/save", userToken(t), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/jobs/j1/save", userToken(t), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

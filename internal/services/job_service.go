package services

import (
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/notify"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	GetJob(db *gorm.DB, id string) (*models.Job, error)
	SearchJobs(db *gorm.DB, criteria dto.SearchJobsRequest, isAdmin bool) ([]models.Job, int64, error)
	CreateJob(db *gorm.DB, creatorID string, isAdmin bool, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, id string) error
	ApproveJob(db *gorm.DB, id string) (*models.Job, error)
	RejectJob(db *gorm.DB, id string) error
	SaveJob(db *gorm.DB, userID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	notifier notify.Provider
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, notifier notify.Provider) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// SearchJobs lists jobs matching the filter. Non-admin callers only see
// approved postings; pending ones stay invisible until an admin approves them.
func (s *JobServiceImpl) SearchJobs(db *gorm.DB, criteria dto.SearchJobsRequest, isAdmin bool) ([]models.Job, int64, error) {
	filter := repositories.JobFilter{
		CategoryID:   criteria.CategoryID,
		LevelID:      criteria.LevelID,
		CompanyName:  criteria.CompanyName,
		Title:        criteria.Title,
		ApprovedOnly: !isAdmin,
		Page:         criteria.Page,
		PageSize:     criteria.PageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// CreateJob stores a new posting. Postings by admins are approved on the
// spot; everyone else's enter the pending-approval workflow.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, creatorID string, isAdmin bool, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		LevelID:         req.LevelID,
		CategoryID:      req.CategoryID,
		TypeID:          req.TypeID,
		Location:        req.Location,
		Description:     req.Description,
		Compensation:    req.Compensation,
		ApplicationLink: req.ApplicationLink,
		IsExternal:      req.IsExternal,
		CompanyID:       req.CompanyID,
		Tags:            tagsJSON(req.Tags),
		IsApproved:      isAdmin,
	}
	if creatorID != "" {
		job.CreatedBy = &creatorID
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		LevelID:         req.LevelID,
		CategoryID:      req.CategoryID,
		TypeID:          req.TypeID,
		Location:        req.Location,
		Description:     req.Description,
		Compensation:    req.Compensation,
		ApplicationLink: req.ApplicationLink,
		IsExternal:      req.IsExternal,
		CompanyID:       req.CompanyID,
		Tags:            tagsJSON(req.Tags),
	}
	job.ID = id

	if err := s.jobRepo.Update(db, job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	return s.jobRepo.FindByID(db, id)
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, id string) error {
	if err := s.jobRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	return nil
}

func (s *JobServiceImpl) ApproveJob(db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.Approve(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	s.notifyCreator(db, job)
	return job, nil
}

// RejectJob removes the posting outright. No audit trail is kept.
func (s *JobServiceImpl) RejectJob(db *gorm.DB, id string) error {
	if err := s.jobRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	return nil
}

func (s *JobServiceImpl) SaveJob(db *gorm.DB, userID, jobID string) error {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}

	if _, err := s.jobRepo.SaveForUser(db, userID, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobAlreadySaved) {
			return apperrors.ErrJobAlreadySaved
		}
		return err
	}
	return nil
}

func (s *JobServiceImpl) notifyCreator(db *gorm.DB, job *models.Job) {
	if s.notifier == nil || job.CreatedBy == nil {
		return
	}

	creator, err := s.userRepo.FindByID(db, *job.CreatedBy)
	if err != nil {
		logger.WithError(err).Warn("skipping approval notification, creator lookup failed", "job_id", job.ID)
		return
	}

	subject := "Your job posting has been approved"
	body := fmt.Sprintf("<p>Your job posting <b>%s</b> is now publicly listed.</p>", job.Title)
	if err := s.notifier.Send(creator.Email, subject, body); err != nil {
		logger.WithError(err).Warn("failed to send approval notification", "job_id", job.ID)
	}
}

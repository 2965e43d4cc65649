package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrJobAlreadySaved = errors.New("job already saved")
)

type JobFilter struct {
	CategoryID  string
	LevelID     string
	CompanyName string
	Title       string
	// ApprovedOnly hides pending jobs from non-admin listings.
	ApprovedOnly bool
	Page         int
	PageSize     int
}

type JobRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)
	Create(db *gorm.DB, job *models.Job) error
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error
	Approve(db *gorm.DB, id string) (*models.Job, error)
	SaveForUser(db *gorm.DB, userID, jobID string) (*models.SavedJob, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Category").Preload("Level").Preload("Company").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := db.Model(&models.Job{})

	if criteria.ApprovedOnly {
		query = query.Where("jobs.is_approved = ?", true)
	}
	if criteria.CategoryID != "" {
		query = query.Where("jobs.category_id = ?", criteria.CategoryID)
	}
	if criteria.LevelID != "" {
		query = query.Where("jobs.level_id = ?", criteria.LevelID)
	}
	if criteria.Title != "" {
		query = query.Where("jobs.title ILIKE ?", "%"+criteria.Title+"%")
	}
	if criteria.CompanyName != "" {
		query = query.Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
			Where("companies.name ILIKE ?", "%"+criteria.CompanyName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("Category").Preload("Level").Preload("Company").
		Order("jobs.created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":            job.Title,
		"level_id":         job.LevelID,
		"category_id":      job.CategoryID,
		"type_id":          job.TypeID,
		"location":         job.Location,
		"description":      job.Description,
		"compensation":     job.Compensation,
		"application_link": job.ApplicationLink,
		"is_external":      job.IsExternal,
		"company_id":       job.CompanyID,
		"tags":             job.Tags,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Approve flips is_approved in a single statement and returns the updated row.
// Approving an already-approved job affects the row again, so the call stays
// idempotent from the caller's point of view.
func (r *JobRepositoryImpl) Approve(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	result := db.Model(&job).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_approved": true,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

func (r *JobRepositoryImpl) SaveForUser(db *gorm.DB, userID, jobID string) (*models.SavedJob, error) {
	var existing models.SavedJob
	if err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&existing).Error; err == nil {
		return nil, ErrJobAlreadySaved
	}

	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := db.Create(saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

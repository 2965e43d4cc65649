package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("job category not found")
	ErrCategoryTitleTaken = errors.New("job category title already exists")
	ErrLevelNotFound      = errors.New("job level not found")
	ErrLevelTitleTaken    = errors.New("job level title already exists")
)

type CategoryRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobCategory, error)
	FindAll(db *gorm.DB, page, pageSize int) ([]models.JobCategory, int64, error)
	Create(db *gorm.DB, category *models.JobCategory) error
	Update(db *gorm.DB, category *models.JobCategory) error
	Delete(db *gorm.DB, id string) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobCategory, error) {
	var category models.JobCategory
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB, page, pageSize int) ([]models.JobCategory, int64, error) {
	var categories []models.JobCategory

	var total int64
	if err := db.Model(&models.JobCategory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("title ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&categories).Error
	return categories, total, err
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.JobCategory) error {
	// Duplicate check first so the caller gets a typed conflict instead of a
	// raw unique-violation error.
	var existing models.JobCategory
	if err := db.Where("title = ?", category.Title).First(&existing).Error; err == nil {
		return ErrCategoryTitleTaken
	}

	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.JobCategory) error {
	var existing models.JobCategory
	if err := db.Where("title = ? AND id <> ?", category.Title, category.ID).First(&existing).Error; err == nil {
		return ErrCategoryTitleTaken
	}

	result := db.Model(&models.JobCategory{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"title":      category.Title,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

type LevelRepository interface {
	FindByID(db *gorm.DB, id string) (*models.JobLevel, error)
	FindAll(db *gorm.DB, page, pageSize int) ([]models.JobLevel, int64, error)
	Create(db *gorm.DB, level *models.JobLevel) error
	Update(db *gorm.DB, level *models.JobLevel) error
	Delete(db *gorm.DB, id string) error
}

type LevelRepositoryImpl struct{}

func NewLevelRepository() LevelRepository {
	return &LevelRepositoryImpl{}
}

func (r *LevelRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobLevel, error) {
	var level models.JobLevel
	err := db.First(&level, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	return &level, nil
}

func (r *LevelRepositoryImpl) FindAll(db *gorm.DB, page, pageSize int) ([]models.JobLevel, int64, error) {
	var levels []models.JobLevel

	var total int64
	if err := db.Model(&models.JobLevel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("title ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&levels).Error
	return levels, total, err
}

func (r *LevelRepositoryImpl) Create(db *gorm.DB, level *models.JobLevel) error {
	var existing models.JobLevel
	if err := db.Where("title = ?", level.Title).First(&existing).Error; err == nil {
		return ErrLevelTitleTaken
	}

	return db.Create(level).Error
}

func (r *LevelRepositoryImpl) Update(db *gorm.DB, level *models.JobLevel) error {
	var existing models.JobLevel
	if err := db.Where("title = ? AND id <> ?", level.Title, level.ID).First(&existing).Error; err == nil {
		return ErrLevelTitleTaken
	}

	result := db.Model(&models.JobLevel{}).Where("id = ?", level.ID).Updates(map[string]interface{}{
		"title":      level.Title,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLevelNotFound
	}
	return nil
}

func (r *LevelRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobLevel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLevelNotFound
	}
	return nil
}

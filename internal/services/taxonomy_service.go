package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetCategory(db *gorm.DB, id string) (*models.JobCategory, error)
	ListCategories(db *gorm.DB, page, pageSize int) ([]models.JobCategory, int64, error)
	CreateCategory(db *gorm.DB, req *dto.TitleRequest) (*models.JobCategory, error)
	UpdateCategory(db *gorm.DB, id string, req *dto.TitleRequest) (*models.JobCategory, error)
	DeleteCategory(db *gorm.DB, id string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) GetCategory(db *gorm.DB, id string) (*models.JobCategory, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) ListCategories(db *gorm.DB, page, pageSize int) ([]models.JobCategory, int64, error) {
	return s.categoryRepo.FindAll(db, page, pageSize)
}

func (s *CategoryServiceImpl) CreateCategory(db *gorm.DB, req *dto.TitleRequest) (*models.JobCategory, error) {
	category := &models.JobCategory{Title: req.Title}

	if err := s.categoryRepo.Create(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryTitleTaken) {
			return nil, apperrors.ErrCategoryTitleTaken
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) UpdateCategory(db *gorm.DB, id string, req *dto.TitleRequest) (*models.JobCategory, error) {
	category := &models.JobCategory{Title: req.Title}
	category.ID = id

	if err := s.categoryRepo.Update(db, category); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrCategoryNotFound):
			return nil, apperrors.ErrCategoryNotFound
		case apperrors.Is(err, repositories.ErrCategoryTitleTaken):
			return nil, apperrors.ErrCategoryTitleTaken
		default:
			return nil, err
		}
	}

	return s.categoryRepo.FindByID(db, id)
}

func (s *CategoryServiceImpl) DeleteCategory(db *gorm.DB, id string) error {
	if err := s.categoryRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

type LevelService interface {
	GetLevel(db *gorm.DB, id string) (*models.JobLevel, error)
	ListLevels(db *gorm.DB, page, pageSize int) ([]models.JobLevel, int64, error)
	CreateLevel(db *gorm.DB, req *dto.TitleRequest) (*models.JobLevel, error)
	UpdateLevel(db *gorm.DB, id string, req *dto.TitleRequest) (*models.JobLevel, error)
	DeleteLevel(db *gorm.DB, id string) error
}

type LevelServiceImpl struct {
	levelRepo repositories.LevelRepository
}

func NewLevelService(levelRepo repositories.LevelRepository) LevelService {
	return &LevelServiceImpl{levelRepo: levelRepo}
}

func (s *LevelServiceImpl) GetLevel(db *gorm.DB, id string) (*models.JobLevel, error) {
	level, err := s.levelRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLevelNotFound) {
			return nil, apperrors.ErrLevelNotFound
		}
		return nil, err
	}
	return level, nil
}

func (s *LevelServiceImpl) ListLevels(db *gorm.DB, page, pageSize int) ([]models.JobLevel, int64, error) {
	return s.levelRepo.FindAll(db, page, pageSize)
}

func (s *LevelServiceImpl) CreateLevel(db *gorm.DB, req *dto.TitleRequest) (*models.JobLevel, error) {
	level := &models.JobLevel{Title: req.Title}

	if err := s.levelRepo.Create(db, level); err != nil {
		if apperrors.Is(err, repositories.ErrLevelTitleTaken) {
			return nil, apperrors.ErrLevelTitleTaken
		}
		return nil, err
	}
	return level, nil
}

func (s *LevelServiceImpl) UpdateLevel(db *gorm.DB, id string, req *dto.TitleRequest) (*models.JobLevel, error) {
	level := &models.JobLevel{Title: req.Title}
	level.ID = id

	if err := s.levelRepo.Update(db, level); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrLevelNotFound):
			return nil, apperrors.ErrLevelNotFound
		case apperrors.Is(err, repositories.ErrLevelTitleTaken):
			return nil, apperrors.ErrLevelTitleTaken
		default:
			return nil, err
		}
	}

	return s.levelRepo.FindByID(db, id)
}

func (s *LevelServiceImpl) DeleteLevel(db *gorm.DB, id string) error {
	if err := s.levelRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrLevelNotFound) {
			return apperrors.ErrLevelNotFound
		}
		return err
	}
	return nil
}

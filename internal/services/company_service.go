package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	GetCompany(db *gorm.DB, id string) (*models.Company, error)
	SearchCompanies(db *gorm.DB, criteria dto.SearchCompaniesRequest) ([]models.Company, int64, error)
	CreateCompany(db *gorm.DB, req *dto.CompanyRequest) (*models.Company, error)
	UpdateCompany(db *gorm.DB, id string, req *dto.CompanyRequest) (*models.Company, error)
	DeleteCompany(db *gorm.DB, id string) error
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) GetCompany(db *gorm.DB, id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyServiceImpl) SearchCompanies(db *gorm.DB, criteria dto.SearchCompaniesRequest) ([]models.Company, int64, error) {
	return s.companyRepo.FindAll(db, criteria.Name, criteria.Page, criteria.PageSize)
}

func (s *CompanyServiceImpl) CreateCompany(db *gorm.DB, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{Name: req.Name}

	if err := s.companyRepo.Create(db, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyServiceImpl) UpdateCompany(db *gorm.DB, id string, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{Name: req.Name}
	company.ID = id

	if err := s.companyRepo.Update(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return s.companyRepo.FindByID(db, id)
}

func (s *CompanyServiceImpl) DeleteCompany(db *gorm.DB, id string) error {
	if err := s.companyRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return err
	}
	return nil
}

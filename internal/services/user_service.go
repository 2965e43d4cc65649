package services

import (
	"net/http"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetUser(db *gorm.DB, id string) (*models.User, error)
	SearchUsers(db *gorm.DB, criteria dto.SearchUsersRequest) ([]models.User, int64, error)
	CreateUser(db *gorm.DB, isAdmin bool, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(db *gorm.DB, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) SearchUsers(db *gorm.DB, criteria dto.SearchUsersRequest) ([]models.User, int64, error) {
	filter := repositories.UserFilter{
		CategoryID: criteria.CategoryID,
		LevelID:    criteria.LevelID,
		Search:     criteria.Search,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}
	return s.userRepo.FindWithFilter(db, filter)
}

// CreateUser registers an account. The requested role is honored only when
// the caller is an admin; everyone else gets the default "user" role.
func (s *UserServiceImpl) CreateUser(db *gorm.DB, isAdmin bool, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "user", "Failed to hash password", http.StatusInternalServerError)
	}

	role := models.UserRoleUser
	if isAdmin && req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		LevelID:      req.LevelID,
		CategoryID:   req.CategoryID,
		Tags:         tagsJSON(req.Tags),
		Role:         role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrEmailTaken):
			return nil, apperrors.ErrEmailAlreadyExists
		case apperrors.Is(err, repositories.ErrUsernameTaken):
			return nil, apperrors.ErrUsernameAlreadyExists
		default:
			return nil, err
		}
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user := &models.User{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		LevelID:     req.LevelID,
		CategoryID:  req.CategoryID,
		Tags:        tagsJSON(req.Tags),
	}
	user.ID = id

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return s.userRepo.FindByID(db, id)
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

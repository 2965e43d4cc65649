package services

import (
	"jobboard_backend/internal/notify"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer groups every service behind one injection point for the
// handlers and tests.
type ServiceContainer struct {
	Jobs       JobService
	Events     EventService
	Users      UserService
	Categories CategoryService
	Levels     LevelService
	Companies  CompanyService
}

func NewServiceContainer(notifier notify.Provider) *ServiceContainer {
	jobRepo := repositories.NewJobRepository()
	userRepo := repositories.NewUserRepository()
	eventRepo := repositories.NewEventRepository()
	categoryRepo := repositories.NewCategoryRepository()
	levelRepo := repositories.NewLevelRepository()
	companyRepo := repositories.NewCompanyRepository()

	return &ServiceContainer{
		Jobs:       NewJobService(jobRepo, userRepo, notifier),
		Events:     NewEventService(eventRepo, userRepo, notifier),
		Users:      NewUserService(userRepo),
		Categories: NewCategoryService(categoryRepo),
		Levels:     NewLevelService(levelRepo),
		Companies:  NewCompanyService(companyRepo),
	}
}

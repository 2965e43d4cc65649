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

type EventService interface {
	GetEvent(db *gorm.DB, id string) (*models.Event, error)
	SearchEvents(db *gorm.DB, criteria dto.SearchEventsRequest) ([]models.Event, int64, error)
	CreateEvent(db *gorm.DB, req *dto.CreateEventRequest) (*models.Event, error)
	UpdateEvent(db *gorm.DB, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(db *gorm.DB, id string) error
	ListRegistrations(db *gorm.DB, eventID string) ([]models.EventRegistration, error)
	RegisterUser(db *gorm.DB, eventID, userID string, userType models.EventUserType) (*models.EventRegistration, error)
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	notifier  notify.Provider
}

func NewEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, notifier notify.Provider) EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

func (s *EventServiceImpl) GetEvent(db *gorm.DB, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) SearchEvents(db *gorm.DB, criteria dto.SearchEventsRequest) ([]models.Event, int64, error) {
	filter := repositories.EventFilter{
		TypeID:   criteria.TypeID,
		Title:    criteria.Title,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	return s.eventRepo.FindWithFilter(db, filter)
}

func (s *EventServiceImpl) CreateEvent(db *gorm.DB, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		TypeID:      req.TypeID,
		Location:    req.Location,
		Description: req.Description,
		StartsAt:    req.StartsAt,
	}

	if err := s.eventRepo.Create(db, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) UpdateEvent(db *gorm.DB, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		TypeID:      req.TypeID,
		Location:    req.Location,
		Description: req.Description,
		StartsAt:    req.StartsAt,
	}
	event.ID = id

	if err := s.eventRepo.Update(db, event); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return s.eventRepo.FindByID(db, id)
}

func (s *EventServiceImpl) DeleteEvent(db *gorm.DB, id string) error {
	if err := s.eventRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return err
	}
	return nil
}

func (s *EventServiceImpl) ListRegistrations(db *gorm.DB, eventID string) ([]models.EventRegistration, error) {
	if _, err := s.eventRepo.FindByID(db, eventID); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return s.eventRepo.ListRegistrations(db, eventID)
}

func (s *EventServiceImpl) RegisterUser(db *gorm.DB, eventID, userID string, userType models.EventUserType) (*models.EventRegistration, error) {
	event, err := s.eventRepo.FindByID(db, eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	registration := &models.EventRegistration{
		EventID:  eventID,
		UserID:   userID,
		UserType: userType,
	}
	if err := s.eventRepo.CreateRegistration(db, registration); err != nil {
		return nil, err
	}

	s.notifyRegistered(event, user)
	return registration, nil
}

func (s *EventServiceImpl) notifyRegistered(event *models.Event, user *models.User) {
	if s.notifier == nil {
		return
	}

	subject := fmt.Sprintf("You are registered for %s", event.Title)
	body := fmt.Sprintf("<p>Your registration for <b>%s</b> has been recorded.</p>", event.Title)
	if err := s.notifier.Send(user.Email, subject, body); err != nil {
		logger.WithError(err).Warn("failed to send registration notification", "event_id", event.ID)
	}
}

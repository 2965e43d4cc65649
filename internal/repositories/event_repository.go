package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventFilter struct {
	TypeID   *int
	Title    string
	Page     int
	PageSize int
}

type EventRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Event, error)
	FindWithFilter(db *gorm.DB, criteria EventFilter) ([]models.Event, int64, error)
	Create(db *gorm.DB, event *models.Event) error
	Update(db *gorm.DB, event *models.Event) error
	Delete(db *gorm.DB, id string) error
	ListRegistrations(db *gorm.DB, eventID string) ([]models.EventRegistration, error)
	CreateRegistration(db *gorm.DB, registration *models.EventRegistration) error
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	err := db.First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindWithFilter(db *gorm.DB, criteria EventFilter) ([]models.Event, int64, error) {
	var events []models.Event
	query := db.Model(&models.Event{})

	if criteria.TypeID != nil {
		query = query.Where("type_id = ?", *criteria.TypeID)
	}
	if criteria.Title != "" {
		query = query.Where("title ILIKE ?", "%"+criteria.Title+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

func (r *EventRepositoryImpl) Create(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

func (r *EventRepositoryImpl) Update(db *gorm.DB, event *models.Event) error {
	result := db.Model(&models.Event{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
		"title":       event.Title,
		"type_id":     event.TypeID,
		"location":    event.Location,
		"description": event.Description,
		"starts_at":   event.StartsAt,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) ListRegistrations(db *gorm.DB, eventID string) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	err := db.Where("event_id = ?", eventID).Order("created_at ASC").Find(&registrations).Error
	return registrations, err
}

func (r *EventRepositoryImpl) CreateRegistration(db *gorm.DB, registration *models.EventRegistration) error {
	return db.Create(registration).Error
}

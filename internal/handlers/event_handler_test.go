package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

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

type stubEventService struct {
	events        map[string]*models.Event
	registrations map[string][]models.EventRegistration
}

func newStubEventService() *stubEventService {
	return &stubEventService{
		events:        make(map[string]*models.Event),
		registrations: make(map[string][]models.EventRegistration),
	}
}

func (s *stubEventService) GetEvent(db *gorm.DB, id string) (*models.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *stubEventService) SearchEvents(db *gorm.DB, criteria dto.SearchEventsRequest) ([]models.Event, int64, error) {
	var out []models.Event
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (s *stubEventService) CreateEvent(db *gorm.DB, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{Title: req.Title, TypeID: req.TypeID, Location: req.Location}
	event.ID = "evt-" + req.Title
	s.events[event.ID] = event
	return event, nil
}

func (s *stubEventService) UpdateEvent(db *gorm.DB, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	event.Title = req.Title
	return event, nil
}

func (s *stubEventService) DeleteEvent(db *gorm.DB, id string) error {
	if _, ok := s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *stubEventService) ListRegistrations(db *gorm.DB, eventID string) ([]models.EventRegistration, error) {
	if _, ok := s.events[eventID]; !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return s.registrations[eventID], nil
}

func (s *stubEventService) RegisterUser(db *gorm.DB, eventID, userID string, userType models.EventUserType) (*models.EventRegistration, error) {
	if _, ok := s.events[eventID]; !ok {
		return nil, apperrors.ErrEventNotFound
	}
	registration := models.EventRegistration{EventID: eventID, UserID: userID, UserType: userType}
	s.registrations[eventID] = append(s.registrations[eventID], registration)
	return &registration, nil
}

func newEventTestRouter(svc *stubEventService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	base := NewBaseHandler(validator.New())
	handler := NewEventHandler(base, svc)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestEventCRUD(t *testing.T) {
	svc := newStubEventService()
	router := newEventTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/events", "", `{"title":"GopherCon"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Event models.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Event.ID)

	w = doRequest(router, http.MethodGet, "/api/v1/events/"+created.Event.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/events/"+created.Event.ID, "", `{"title":"GopherCon EU"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GopherCon EU", svc.events[created.Event.ID].Title)

	w = doRequest(router, http.MethodDelete, "/api/v1/events/"+created.Event.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/events/"+created.Event.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateEventValidation(t *testing.T) {
	router := newEventTestRouter(newStubEventService())

	w := doRequest(router, http.MethodPost, "/api/v1/events", "", `{"title":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegisterForEvent(t *testing.T) {
	svc := newStubEventService()
	event := &models.Event{Title: "GopherCon"}
	event.ID = "evt-1"
	svc.events["evt-1"] = event
	router := newEventTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/events/evt-1/register/user-9", "", `{"userType":"speaker"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.registrations["evt-1"], 1)
	assert.Equal(t, models.EventUserTypeSpeaker, svc.registrations["evt-1"][0].UserType)
	assert.Equal(t, "user-9", svc.registrations["evt-1"][0].UserID)
}

func TestRegisterForUnknownEvent(t *testing.T) {
	router := newEventTestRouter(newStubEventService())

	w := doRequest(router, http.MethodPost, "/api/v1/events/missing/register/user-9", "", `{"userType":"attendee"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRejectsUnknownUserType(t *testing.T) {
	svc := newStubEventService()
	event := &models.Event{Title: "GopherCon"}
	event.ID = "evt-1"
	svc.events["evt-1"] = event
	router := newEventTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/events/evt-1/register/user-9", "", `{"userType":"spectator"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, svc.registrations["evt-1"])
}

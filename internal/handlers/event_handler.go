package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("", h.SearchEvents)
		events.GET("/:eventId", h.GetEvent)
		events.POST("", h.CreateEvent)
		events.PUT("/:eventId", h.UpdateEvent)
		events.DELETE("/:eventId", h.DeleteEvent)
		events.GET("/:eventId/registrations", h.ListRegistrations)
		events.POST("/:eventId/register/:userId", h.RegisterUser)
	}
}

// SearchEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param typeId query int false "Event type"
// @Param title query string false "Title substring"
// @Param pageIndex query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (h *EventHandler) SearchEvents(c *gin.Context) {
	var criteria dto.SearchEventsRequest
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	events, total, err := h.eventService.SearchEvents(h.GetDB(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	RespondPaged(c, events, criteria.Page, criteria.PageSize, total)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(h.GetDB(c), c.Param("eventId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.UpdateEvent(h.GetDB(c), c.Param("eventId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	if err := h.eventService.DeleteEvent(h.GetDB(c), eventID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"id":      eventID,
	})
}

func (h *EventHandler) ListRegistrations(c *gin.Context) {
	registrations, err := h.eventService.ListRegistrations(h.GetDB(c), c.Param("eventId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": registrations})
}

// RegisterUser godoc
// @Summary Register a user for an event
// @Tags events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param userId path string true "User ID"
// @Param registration body dto.RegisterEventRequest true "Registration payload"
// @Success 201 {object} models.EventRegistration
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /events/{eventId}/register/{userId} [post]
func (h *EventHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	registration, err := h.eventService.RegisterUser(
		h.GetDB(c),
		c.Param("eventId"),
		c.Param("userId"),
		models.EventUserType(req.UserType),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registered for event successfully",
		"registration": registration,
	})
}

package handlers

import (
	"net/http"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService      *services.EventService
	enrollmentService *services.EnrollmentService
	allocationService *services.AllocationService
	statsService      *services.StatsService
}

func NewEventHandler(eventService *services.EventService, enrollmentService *services.EnrollmentService, allocationService *services.AllocationService, statsService *services.StatsService) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		enrollmentService: enrollmentService,
		allocationService: allocationService,
		statsService:      statsService,
	}
}

// ListEvents lists all events
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent retrieves an event
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event data"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// EnrollPlayer signs a player up for an event
// @Summary Enroll a player in an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.EnrollPlayerRequest true "Enrollment data"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /enrollments [post]
func (h *EventHandler) EnrollPlayer(c *gin.Context) {
	var req models.EnrollPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.EnrollPlayer(req.EventID, req.PlayerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// GetEventEnrollments lists the enrollments of an event
// @Summary List enrollments of an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.Enrollment
// @Failure 400 {object} map[string]string
// @Router /events/{id}/enrollments [get]
func (h *EventHandler) GetEventEnrollments(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListByEvent(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// AllocateTeams runs the one-shot team allocation for an event
// @Summary Allocate teams for an event
// @Description Partition every enrolled player into balanced active teams plus the waiting pool
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.AllocationResult
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/{id}/allocate [post]
func (h *EventHandler) AllocateTeams(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.allocationService.AllocateTeams(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEventStats returns the per-event summary
// @Summary Get event statistics
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.EventStats
// @Failure 404 {object} map[string]string
// @Router /events/{id}/stats [get]
func (h *EventHandler) GetEventStats(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.statsService.GetEventStats(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

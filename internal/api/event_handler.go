package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	defaultEventsLimit         = 10
	defaultUpcomingEventsLimit = 4
)

// EventHandler handles event endpoints
type EventHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(services *service.Services, log zerolog.Logger) *EventHandler {
	return &EventHandler{
		services: services,
		log:      log.With().Str("handler", "event").Logger(),
	}
}

// ListEvents handles GET /v1/events, optionally filtered to ?upcoming
func (h *EventHandler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	if hasQuery(c, "upcoming") {
		limit, ok := parseIntQuery(c, "limit", defaultUpcomingEventsLimit)
		if !ok {
			return
		}
		events, err := h.services.Event.ListUpcoming(ctx, limit)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	limit, ok := parseIntQuery(c, "limit", defaultEventsLimit)
	if !ok {
		return
	}
	events, err := h.services.Event.List(ctx, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload"})
		return
	}

	event, err := h.services.Event.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

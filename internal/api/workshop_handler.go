package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	defaultWorkshopsLimit         = 10
	defaultFeaturedWorkshopsLimit = 3
)

// WorkshopHandler handles workshop endpoints
type WorkshopHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewWorkshopHandler creates a new WorkshopHandler
func NewWorkshopHandler(services *service.Services, log zerolog.Logger) *WorkshopHandler {
	return &WorkshopHandler{
		services: services,
		log:      log.With().Str("handler", "workshop").Logger(),
	}
}

// ListWorkshops handles GET /v1/workshops, optionally filtered to ?featured
func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	ctx := c.Request.Context()

	if hasQuery(c, "featured") {
		limit, ok := parseIntQuery(c, "limit", defaultFeaturedWorkshopsLimit)
		if !ok {
			return
		}
		workshops, err := h.services.Workshop.ListFeatured(ctx, limit)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, workshops)
		return
	}

	limit, ok := parseIntQuery(c, "limit", defaultWorkshopsLimit)
	if !ok {
		return
	}
	workshops, err := h.services.Workshop.List(ctx, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, workshops)
}

// GetWorkshop handles GET /v1/workshops/:slug
func (h *WorkshopHandler) GetWorkshop(c *gin.Context) {
	workshop, err := h.services.Workshop.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, workshop)
}

// CreateWorkshop handles POST /v1/workshops
func (h *WorkshopHandler) CreateWorkshop(c *gin.Context) {
	var input models.WorkshopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workshop payload"})
		return
	}

	workshop, err := h.services.Workshop.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, workshop)
}

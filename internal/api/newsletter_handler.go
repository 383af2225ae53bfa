package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter signup endpoints
type NewsletterHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services: services,
		log:      log.With().Str("handler", "newsletter").Logger(),
	}
}

// Subscribe handles POST /v1/subscribers. A first-time signup returns 201;
// subscribing an already known email returns 200 with the original record.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var input models.SubscriberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscriber payload"})
		return
	}

	subscriber, created, err := h.services.Newsletter.Subscribe(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, subscriber)
}

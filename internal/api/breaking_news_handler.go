package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// BreakingNewsHandler handles breaking-news banner endpoints
type BreakingNewsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBreakingNewsHandler creates a new BreakingNewsHandler
func NewBreakingNewsHandler(services *service.Services, log zerolog.Logger) *BreakingNewsHandler {
	return &BreakingNewsHandler{
		services: services,
		log:      log.With().Str("handler", "breaking_news").Logger(),
	}
}

// ListBreakingNews handles GET /v1/breaking-news, returning active items only
func (h *BreakingNewsHandler) ListBreakingNews(c *gin.Context) {
	items, err := h.services.BreakingNews.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateBreakingNews handles POST /v1/breaking-news
func (h *BreakingNewsHandler) CreateBreakingNews(c *gin.Context) {
	var input models.BreakingNewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breaking news payload"})
		return
	}

	item, err := h.services.BreakingNews.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

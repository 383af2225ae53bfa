package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

const defaultPopularTagsLimit = 10

// TagHandler handles tag endpoints
type TagHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(services *service.Services, log zerolog.Logger) *TagHandler {
	return &TagHandler{
		services: services,
		log:      log.With().Str("handler", "tag").Logger(),
	}
}

// ListTags handles GET /v1/tags. With ?popular the tags come ranked by
// article usage and include the usage count.
func (h *TagHandler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	if hasQuery(c, "popular") {
		limit, ok := parseIntQuery(c, "limit", defaultPopularTagsLimit)
		if !ok {
			return
		}
		tags, err := h.services.Tag.ListPopular(ctx, limit)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, tags)
		return
	}

	tags, err := h.services.Tag.List(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /v1/tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var input models.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag payload"})
		return
	}

	tag, err := h.services.Tag.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(services *service.Services, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		services: services,
		log:      log.With().Str("handler", "category").Logger(),
	}
}

// ListCategories handles GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /v1/categories/:slug
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.services.Category.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryArticles handles GET /v1/categories/:slug/articles. An unknown
// slug yields an empty list, matching the behavior of the category filter on
// the articles collection.
func (h *CategoryHandler) ListCategoryArticles(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", defaultListLimit)
	if !ok {
		return
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return
	}

	articles, err := h.services.Article.ListByCategory(c.Request.Context(), c.Param("slug"), limit, offset)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// CreateCategory handles POST /v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category payload"})
		return
	}

	category, err := h.services.Category.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

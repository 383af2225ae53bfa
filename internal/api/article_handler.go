package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// Default listing sizes per call site, mirroring what the frontend sections
// request
const (
	defaultListLimit     = 10
	defaultFeaturedLimit = 1
	defaultLatestLimit   = 3
	defaultPopularLimit  = 5
	defaultViralLimit    = 5
	defaultSearchLimit   = 10
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /v1/articles. The query parameters select the
// operation with fixed precedence:
// featured > popular > viral > latest > category > search > plain listing.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return
	}

	switch {
	case hasQuery(c, "featured"):
		limit, ok := parseIntQuery(c, "limit", defaultFeaturedLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.ListFeatured(ctx, limit)
		h.respondList(c, articles, err)

	case hasQuery(c, "popular"):
		limit, ok := parseIntQuery(c, "limit", defaultPopularLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.ListPopular(ctx, limit)
		h.respondList(c, articles, err)

	case hasQuery(c, "viral"):
		limit, ok := parseIntQuery(c, "limit", defaultViralLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.ListViral(ctx, limit)
		h.respondList(c, articles, err)

	case hasQuery(c, "latest"):
		limit, ok := parseIntQuery(c, "limit", defaultLatestLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.ListLatest(ctx, limit)
		h.respondList(c, articles, err)

	case c.Query("category") != "":
		limit, ok := parseIntQuery(c, "limit", defaultListLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.ListByCategory(ctx, c.Query("category"), limit, offset)
		h.respondList(c, articles, err)

	case hasQuery(c, "search"):
		query := c.Query("search")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search query must not be empty"})
			return
		}
		limit, ok := parseIntQuery(c, "limit", defaultSearchLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.Search(ctx, query, limit)
		h.respondList(c, articles, err)

	default:
		limit, ok := parseIntQuery(c, "limit", defaultListLimit)
		if !ok {
			return
		}
		articles, err := h.services.Article.List(ctx, limit, offset)
		h.respondList(c, articles, err)
	}
}

// GetArticle handles GET /v1/articles/:slug. All-digit values resolve by id.
// A successful fetch counts as a view; the response carries the incremented
// counter.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.Read(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article payload"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) respondList(c *gin.Context, articles []*models.Article, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// hasQuery reports whether a query parameter is present, regardless of value
func hasQuery(c *gin.Context, name string) bool {
	_, ok := c.GetQuery(name)
	return ok
}

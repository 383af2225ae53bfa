package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// respondError translates store and service failures into HTTP statuses:
// not-found 404, conflict 409, invalid input 400, anything unexpected 500.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": vErr.Details,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, repository.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid argument"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIntQuery reads an optional non-negative integer query parameter,
// falling back to def when absent. A malformed or negative value aborts the
// request with a 400.
func parseIntQuery(c *gin.Context, name string, def int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return value, true
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the article operations exposed to the HTTP layer
type ArticleService interface {
	List(ctx context.Context, limit, offset int) ([]*models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// Read fetches by slug or numeric id and counts the view: the returned
	// record carries the already-incremented view count.
	Read(ctx context.Context, slugOrID string) (*models.Article, error)
	ListByCategory(ctx context.Context, slugOrID string, limit, offset int) ([]*models.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Article, error)
	ListLatest(ctx context.Context, limit int) ([]*models.Article, error)
	ListPopular(ctx context.Context, limit int) ([]*models.Article, error)
	ListViral(ctx context.Context, limit int) ([]*models.Article, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Article, error)
	Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error)
}

// CategoryService defines the category operations
type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, input *models.CategoryInput) (*models.Category, error)
}

// TagService defines the tag operations
type TagService interface {
	List(ctx context.Context) ([]*models.Tag, error)
	ListPopular(ctx context.Context, limit int) ([]*models.TagWithCount, error)
	Create(ctx context.Context, input *models.TagInput) (*models.Tag, error)
}

// WorkshopService defines the workshop operations
type WorkshopService interface {
	List(ctx context.Context, limit int) ([]*models.Workshop, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Workshop, error)
	GetBySlug(ctx context.Context, slug string) (*models.Workshop, error)
	Create(ctx context.Context, input *models.WorkshopInput) (*models.Workshop, error)
}

// EventService defines the event operations
type EventService interface {
	List(ctx context.Context, limit int) ([]*models.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error)
	Create(ctx context.Context, input *models.EventInput) (*models.Event, error)
}

// NewsletterService defines newsletter signup operations
type NewsletterService interface {
	// Subscribe normalizes the email and stores the signup; created reports
	// whether a new record was made or an existing one returned.
	Subscribe(ctx context.Context, input *models.SubscriberInput) (sub *models.Subscriber, created bool, err error)
}

// BreakingNewsService defines banner item operations
type BreakingNewsService interface {
	ListActive(ctx context.Context) ([]*models.BreakingNews, error)
	Create(ctx context.Context, input *models.BreakingNewsInput) (*models.BreakingNews, error)
}

// Services holds all service interfaces
type Services struct {
	Article      ArticleService
	Category     CategoryService
	Tag          TagService
	Workshop     WorkshopService
	Event        EventService
	Newsletter   NewsletterService
	BreakingNews BreakingNewsService

	repos *repository.Repositories
}

// NewServices creates all services over the given repositories
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article:      newArticleService(repos, log),
		Category:     newCategoryService(repos.Category, log),
		Tag:          newTagService(repos.Tag, log),
		Workshop:     newWorkshopService(repos.Workshop, log),
		Event:        newEventService(repos.Event, log),
		Newsletter:   newNewsletterService(repos.Subscriber, log),
		BreakingNews: newBreakingNewsService(repos.BreakingNews, log),
		repos:        repos,
	}
}

// Counts returns the number of records per entity table, for /metrics
func (s *Services) Counts(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	if s.repos == nil {
		return counts
	}
	if n, err := s.repos.Category.Count(ctx); err == nil {
		counts["categories"] = n
	}
	if n, err := s.repos.Article.Count(ctx); err == nil {
		counts["articles"] = n
	}
	if n, err := s.repos.Tag.Count(ctx); err == nil {
		counts["tags"] = n
	}
	if n, err := s.repos.Workshop.Count(ctx); err == nil {
		counts["workshops"] = n
	}
	if n, err := s.repos.Event.Count(ctx); err == nil {
		counts["events"] = n
	}
	if n, err := s.repos.Subscriber.Count(ctx); err == nil {
		counts["subscribers"] = n
	}
	if n, err := s.repos.BreakingNews.Count(ctx); err == nil {
		counts["breaking_news"] = n
	}
	return counts
}

// ValidationError carries the field-level failures of a create payload.
// Handlers render it as a 400 with the details list.
type ValidationError struct {
	Details []validation.Error
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, d.Field)
	}
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

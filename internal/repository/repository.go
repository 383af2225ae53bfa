package repository

import (
	"context"

	"github.com/news-portal-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Listings are read-only and sorted newest-first by published_at unless
// stated otherwise; limit 0 means no cap, negative values are rejected
// with ErrInvalidArgument.
type ArticleRepository interface {
	List(ctx context.Context, limit, offset int) ([]*models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// ListByCategory resolves slugOrID (numeric strings resolve by id) and
	// returns the category's articles. An unknown category yields an empty
	// list, never an error.
	ListByCategory(ctx context.Context, slugOrID string, limit, offset int) ([]*models.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Article, error)
	// ListPopular sorts by the weighted popularity score configured on the store.
	ListPopular(ctx context.Context, limit int) ([]*models.Article, error)
	// ListViral filters is_viral and sorts by the same popularity score.
	ListViral(ctx context.Context, limit int) ([]*models.Article, error)
	// Search matches any whitespace-separated term of query as a
	// case-insensitive substring of title, excerpt, content or tags.
	// An empty or blank query fails with ErrInvalidArgument.
	Search(ctx context.Context, query string, limit int) ([]*models.Article, error)
	// Create validates the category reference, assigns the next id, zeroes
	// all counters and increments the category's article_count as one
	// atomic unit. An unknown category fails with ErrNotFound and leaves
	// both tables untouched.
	Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error)
	IncrementViewCount(ctx context.Context, id int) (*models.Article, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, input *models.CategoryInput) (*models.Category, error)
	Count(ctx context.Context) (int, error)
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	List(ctx context.Context) ([]*models.Tag, error)
	// ListPopular ranks tags by the number of articles carrying the tag name.
	ListPopular(ctx context.Context, limit int) ([]*models.TagWithCount, error)
	Create(ctx context.Context, input *models.TagInput) (*models.Tag, error)
	Count(ctx context.Context) (int, error)
}

// WorkshopRepository defines the interface for workshop data operations.
// Listings are sorted by date ascending.
type WorkshopRepository interface {
	List(ctx context.Context, limit int) ([]*models.Workshop, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Workshop, error)
	GetBySlug(ctx context.Context, slug string) (*models.Workshop, error)
	Create(ctx context.Context, input *models.WorkshopInput) (*models.Workshop, error)
	Count(ctx context.Context) (int, error)
}

// EventRepository defines the interface for event data operations.
// Listings are sorted by date ascending.
type EventRepository interface {
	List(ctx context.Context, limit int) ([]*models.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error)
	Create(ctx context.Context, input *models.EventInput) (*models.Event, error)
	Count(ctx context.Context) (int, error)
}

// SubscriberRepository defines the interface for newsletter signups
type SubscriberRepository interface {
	// Create is idempotent on email: a duplicate subscription returns the
	// existing record with created == false instead of failing.
	Create(ctx context.Context, input *models.SubscriberInput) (sub *models.Subscriber, created bool, err error)
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Count(ctx context.Context) (int, error)
}

// BreakingNewsRepository defines the interface for banner items
type BreakingNewsRepository interface {
	ListActive(ctx context.Context) ([]*models.BreakingNews, error)
	Create(ctx context.Context, input *models.BreakingNewsInput) (*models.BreakingNews, error)
	Count(ctx context.Context) (int, error)
}

// PopularityWeights parameterize the popularity score used by ListPopular
// and ListViral: score = View*view_count + Comment*comment_count + Share*share_count.
type PopularityWeights struct {
	View    float64
	Comment float64
	Share   float64
}

// DefaultPopularityWeights favor shares over comments over raw views
func DefaultPopularityWeights() PopularityWeights {
	return PopularityWeights{View: 1.0, Comment: 2.0, Share: 3.0}
}

// Score computes the popularity score for an article
func (w PopularityWeights) Score(a *models.Article) float64 {
	return w.View*float64(a.ViewCount) +
		w.Comment*float64(a.CommentCount) +
		w.Share*float64(a.ShareCount)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article      ArticleRepository
	Category     CategoryRepository
	Tag          TagRepository
	Workshop     WorkshopRepository
	Event        EventRepository
	Subscriber   SubscriberRepository
	BreakingNews BreakingNewsRepository
}

package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/news-portal-api/internal/models"
)

// articleRepo is the in-memory implementation of ArticleRepository
type articleRepo struct {
	store *memStore
}

// List returns all articles sorted newest first
func (r *articleRepo) List(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.collectLocked(nil)
	sortByPublishedAt(all)
	return page(all, limit, offset), nil
}

// GetByID retrieves an article by id
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	article, ok := r.store.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneArticle(article), nil
}

// GetBySlug retrieves an article by slug through the slug index
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.articleSlugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneArticle(r.store.articles[id]), nil
}

// ListByCategory returns the articles of the category identified by slug or
// numeric id. An unknown category degrades to an empty list so listing
// endpoints stay resilient to stale references.
func (r *articleRepo) ListByCategory(ctx context.Context, slugOrID string, limit, offset int) ([]*models.Article, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categoryID, ok := r.resolveCategoryLocked(slugOrID)
	if !ok {
		return []*models.Article{}, nil
	}

	matched := r.collectLocked(func(a *models.Article) bool {
		return a.CategoryID == categoryID
	})
	sortByPublishedAt(matched)
	return page(matched, limit, offset), nil
}

// ListFeatured returns featured articles, newest first
func (r *articleRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := r.collectLocked(func(a *models.Article) bool { return a.IsFeatured })
	sortByPublishedAt(matched)
	return page(matched, limit, 0), nil
}

// ListPopular returns articles ranked by the configured popularity score
func (r *articleRepo) ListPopular(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.collectLocked(nil)
	r.store.sortByPopularity(all)
	return page(all, limit, 0), nil
}

// ListViral returns viral-flagged articles ranked by popularity score
func (r *articleRepo) ListViral(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := r.collectLocked(func(a *models.Article) bool { return a.IsViral })
	r.store.sortByPopularity(matched)
	return page(matched, limit, 0), nil
}

// Search matches any whitespace-separated term against title, excerpt,
// content and tags, case-insensitively
func (r *articleRepo) Search(ctx context.Context, query string, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, ErrInvalidArgument
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := r.collectLocked(func(a *models.Article) bool {
		return matchesQuery(a, terms)
	})
	sortByPublishedAt(matched)
	return page(matched, limit, 0), nil
}

// Create inserts a new article and increments the owning category's
// article_count under the same lock. A missing category fails the whole
// operation with ErrNotFound, leaving both tables untouched.
func (r *articleRepo) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	category, ok := r.store.categories[input.CategoryID]
	if !ok {
		return nil, ErrNotFound
	}
	if _, exists := r.store.articleSlugs[input.Slug]; exists {
		return nil, ErrConflict
	}

	article := &models.Article{
		ID:          r.store.nextArticleID,
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Author:      input.Author,
		CategoryID:  input.CategoryID,
		Tags:        append([]string(nil), input.Tags...),
		IsFeatured:  input.IsFeatured,
		IsBreaking:  input.IsBreaking,
		IsViral:     input.IsViral,
		PublishedAt: input.PublishedAt,
		CreatedAt:   time.Now(),
	}
	r.store.nextArticleID++
	r.store.articles[article.ID] = article
	r.store.articleSlugs[article.Slug] = article.ID
	category.ArticleCount++

	return cloneArticle(article), nil
}

// IncrementViewCount bumps the view counter and returns the updated record
func (r *articleRepo) IncrementViewCount(ctx context.Context, id int) (*models.Article, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	article, ok := r.store.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	article.ViewCount++
	return cloneArticle(article), nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.articles), nil
}

// collectLocked copies every article passing the filter. Callers must hold
// the store lock.
func (r *articleRepo) collectLocked(filter func(*models.Article) bool) []*models.Article {
	out := make([]*models.Article, 0, len(r.store.articles))
	for _, a := range r.store.articles {
		if filter == nil || filter(a) {
			out = append(out, cloneArticle(a))
		}
	}
	return out
}

// resolveCategoryLocked maps a slug or numeric id string to a category id
func (r *articleRepo) resolveCategoryLocked(slugOrID string) (int, bool) {
	if id, err := strconv.Atoi(slugOrID); err == nil {
		_, ok := r.store.categories[id]
		return id, ok
	}
	id, ok := r.store.categorySlugs[slugOrID]
	return id, ok
}

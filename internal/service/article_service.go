package service

import (
	"context"
	"strconv"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: repos.Article,
		log:      log.With().Str("service", "article").Logger(),
	}
}

func (s *articleService) List(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	return s.articles.List(ctx, limit, offset)
}

func (s *articleService) GetByID(ctx context.Context, id int) (*models.Article, error) {
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.articles.GetBySlug(ctx, slug)
}

// Read resolves slugOrID (all-digit strings resolve by id) and counts the
// view as a side effect of the successful fetch
func (s *articleService) Read(ctx context.Context, slugOrID string) (*models.Article, error) {
	var article *models.Article
	var err error

	if id, convErr := strconv.Atoi(slugOrID); convErr == nil {
		article, err = s.articles.GetByID(ctx, id)
	} else {
		article, err = s.articles.GetBySlug(ctx, slugOrID)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.articles.IncrementViewCount(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("article_id", updated.ID).Int("view_count", updated.ViewCount).Msg("Article read")
	return updated, nil
}

func (s *articleService) ListByCategory(ctx context.Context, slugOrID string, limit, offset int) ([]*models.Article, error) {
	return s.articles.ListByCategory(ctx, slugOrID, limit, offset)
}

func (s *articleService) ListFeatured(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.articles.ListFeatured(ctx, limit)
}

// ListLatest is List truncated to limit
func (s *articleService) ListLatest(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.articles.List(ctx, limit, 0)
}

func (s *articleService) ListPopular(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.articles.ListPopular(ctx, limit)
}

func (s *articleService) ListViral(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.articles.ListViral(ctx, limit)
}

func (s *articleService) Search(ctx context.Context, query string, limit int) ([]*models.Article, error) {
	return s.articles.Search(ctx, query, limit)
}

func (s *articleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	if details := validation.ValidateArticle(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	article, err := s.articles.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", article.ID).
		Str("slug", article.Slug).
		Int("category_id", article.CategoryID).
		Msg("Article created")
	return article, nil
}

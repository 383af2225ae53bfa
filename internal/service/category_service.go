package service

import (
	"context"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	categories repository.CategoryRepository
	log        zerolog.Logger
}

func newCategoryService(categories repository.CategoryRepository, log zerolog.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		log:        log.With().Str("service", "category").Logger(),
	}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

func (s *categoryService) Create(ctx context.Context, input *models.CategoryInput) (*models.Category, error) {
	if details := validation.ValidateCategory(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	category, err := s.categories.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	return category, nil
}

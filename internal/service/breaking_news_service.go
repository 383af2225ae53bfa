package service

import (
	"context"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// breakingNewsService is the concrete implementation of BreakingNewsService
type breakingNewsService struct {
	breaking repository.BreakingNewsRepository
	log      zerolog.Logger
}

func newBreakingNewsService(breaking repository.BreakingNewsRepository, log zerolog.Logger) BreakingNewsService {
	return &breakingNewsService{
		breaking: breaking,
		log:      log.With().Str("service", "breaking_news").Logger(),
	}
}

func (s *breakingNewsService) ListActive(ctx context.Context) ([]*models.BreakingNews, error) {
	return s.breaking.ListActive(ctx)
}

func (s *breakingNewsService) Create(ctx context.Context, input *models.BreakingNewsInput) (*models.BreakingNews, error) {
	if details := validation.ValidateBreakingNews(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	item, err := s.breaking.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("breaking_news_id", item.ID).Bool("is_active", item.IsActive).Msg("Breaking news created")
	return item, nil
}

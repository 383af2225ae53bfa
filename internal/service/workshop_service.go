package service

import (
	"context"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// workshopService is the concrete implementation of WorkshopService
type workshopService struct {
	workshops repository.WorkshopRepository
	log       zerolog.Logger
}

func newWorkshopService(workshops repository.WorkshopRepository, log zerolog.Logger) WorkshopService {
	return &workshopService{
		workshops: workshops,
		log:       log.With().Str("service", "workshop").Logger(),
	}
}

func (s *workshopService) List(ctx context.Context, limit int) ([]*models.Workshop, error) {
	return s.workshops.List(ctx, limit)
}

func (s *workshopService) ListFeatured(ctx context.Context, limit int) ([]*models.Workshop, error) {
	return s.workshops.ListFeatured(ctx, limit)
}

func (s *workshopService) GetBySlug(ctx context.Context, slug string) (*models.Workshop, error) {
	return s.workshops.GetBySlug(ctx, slug)
}

func (s *workshopService) Create(ctx context.Context, input *models.WorkshopInput) (*models.Workshop, error) {
	if details := validation.ValidateWorkshop(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	workshop, err := s.workshops.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("workshop_id", workshop.ID).Str("slug", workshop.Slug).Msg("Workshop created")
	return workshop, nil
}

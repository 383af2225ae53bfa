package service

import (
	"context"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// tagService is the concrete implementation of TagService
type tagService struct {
	tags repository.TagRepository
	log  zerolog.Logger
}

func newTagService(tags repository.TagRepository, log zerolog.Logger) TagService {
	return &tagService{
		tags: tags,
		log:  log.With().Str("service", "tag").Logger(),
	}
}

func (s *tagService) List(ctx context.Context) ([]*models.Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagService) ListPopular(ctx context.Context, limit int) ([]*models.TagWithCount, error) {
	return s.tags.ListPopular(ctx, limit)
}

func (s *tagService) Create(ctx context.Context, input *models.TagInput) (*models.Tag, error) {
	if details := validation.ValidateTag(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	tag, err := s.tags.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("tag_id", tag.ID).Str("slug", tag.Slug).Msg("Tag created")
	return tag, nil
}

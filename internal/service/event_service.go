package service

import (
	"context"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// eventService is the concrete implementation of EventService
type eventService struct {
	events repository.EventRepository
	log    zerolog.Logger
}

func newEventService(events repository.EventRepository, log zerolog.Logger) EventService {
	return &eventService{
		events: events,
		log:    log.With().Str("service", "event").Logger(),
	}
}

func (s *eventService) List(ctx context.Context, limit int) ([]*models.Event, error) {
	return s.events.List(ctx, limit)
}

func (s *eventService) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	return s.events.ListUpcoming(ctx, limit)
}

func (s *eventService) Create(ctx context.Context, input *models.EventInput) (*models.Event, error) {
	if details := validation.ValidateEvent(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	event, err := s.events.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("event_id", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

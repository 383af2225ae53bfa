package service

import (
	"context"
	"strings"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	subscribers repository.SubscriberRepository
	log         zerolog.Logger
}

func newNewsletterService(subscribers repository.SubscriberRepository, log zerolog.Logger) NewsletterService {
	return &newsletterService{
		subscribers: subscribers,
		log:         log.With().Str("service", "newsletter").Logger(),
	}
}

// Subscribe stores a signup. Emails are lowercased and trimmed before the
// uniqueness check, so "User@Example.com" and "user@example.com" converge
// to one record.
func (s *newsletterService) Subscribe(ctx context.Context, input *models.SubscriberInput) (*models.Subscriber, bool, error) {
	normalized := &models.SubscriberInput{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
	}

	if details := validation.ValidateSubscriber(normalized); len(details) > 0 {
		return nil, false, &ValidationError{Details: details}
	}

	sub, created, err := s.subscribers.Create(ctx, normalized)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.Info().Int("subscriber_id", sub.ID).Msg("Newsletter subscription created")
	} else {
		s.log.Debug().Int("subscriber_id", sub.ID).Msg("Duplicate subscription, returning existing record")
	}
	return sub, created, nil
}

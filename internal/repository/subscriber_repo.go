package repository

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/models"
)

// subscriberRepo is the in-memory implementation of SubscriberRepository
type subscriberRepo struct {
	store *memStore
}

// Create subscribes an email address. Subscribing twice with the same email
// returns the original record with created == false; the table never holds
// two records for one address.
func (r *subscriberRepo) Create(ctx context.Context, input *models.SubscriberInput) (*models.Subscriber, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if id, exists := r.store.subscriberEmails[input.Email]; exists {
		existing := *r.store.subscribers[id]
		return &existing, false, nil
	}

	subscriber := &models.Subscriber{
		ID:           r.store.nextSubscriberID,
		Name:         input.Name,
		Email:        input.Email,
		SubscribedAt: time.Now(),
	}
	r.store.nextSubscriberID++
	r.store.subscribers[subscriber.ID] = subscriber
	r.store.subscriberEmails[subscriber.Email] = subscriber.ID

	copied := *subscriber
	return &copied, true, nil
}

// GetByEmail retrieves a subscriber through the email index
func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.subscriberEmails[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r.store.subscribers[id]
	return &copied, nil
}

// Count returns the total number of subscribers
func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.subscribers), nil
}

package repository

import (
	"context"
	"sort"
	"time"

	"github.com/news-portal-api/internal/models"
)

// eventRepo is the in-memory implementation of EventRepository
type eventRepo struct {
	store *memStore
}

// List returns events sorted by date ascending
func (r *eventRepo) List(ctx context.Context, limit int) ([]*models.Event, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.collectLocked(nil)
	sortEventsByDate(all)
	return page(all, limit, 0), nil
}

// ListUpcoming returns events whose date has not passed, soonest first
func (r *eventRepo) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	now := time.Now()

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := r.collectLocked(func(e *models.Event) bool {
		return !e.Date.Before(now)
	})
	sortEventsByDate(matched)
	return page(matched, limit, 0), nil
}

// Create inserts a new event. Events carry no unique key.
func (r *eventRepo) Create(ctx context.Context, input *models.EventInput) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event := &models.Event{
		ID:           r.store.nextEventID,
		Title:        input.Title,
		Description:  input.Description,
		Date:         input.Date,
		Location:     input.Location,
		Price:        input.Price,
		ButtonText:   input.ButtonText,
		ButtonAction: input.ButtonAction,
		BorderColor:  input.BorderColor,
	}
	r.store.nextEventID++
	r.store.events[event.ID] = event

	copied := *event
	return &copied, nil
}

// Count returns the total number of events
func (r *eventRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.events), nil
}

func (r *eventRepo) collectLocked(filter func(*models.Event) bool) []*models.Event {
	out := make([]*models.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		if filter == nil || filter(e) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out
}

func sortEventsByDate(events []*models.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
}

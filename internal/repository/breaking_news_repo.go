package repository

import (
	"context"
	"sort"
	"time"

	"github.com/news-portal-api/internal/models"
)

// breakingNewsRepo is the in-memory implementation of BreakingNewsRepository
type breakingNewsRepo struct {
	store *memStore
}

// ListActive returns the currently active banner items, newest first
func (r *breakingNewsRepo) ListActive(ctx context.Context) ([]*models.BreakingNews, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.BreakingNews, 0, len(r.store.breakingNews))
	for _, b := range r.store.breakingNews {
		if b.IsActive {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Create inserts a new banner item
func (r *breakingNewsRepo) Create(ctx context.Context, input *models.BreakingNewsInput) (*models.BreakingNews, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item := &models.BreakingNews{
		ID:        r.store.nextBreakingID,
		Content:   input.Content,
		IsActive:  input.IsActive,
		CreatedAt: time.Now(),
	}
	r.store.nextBreakingID++
	r.store.breakingNews[item.ID] = item

	copied := *item
	return &copied, nil
}

// Count returns the total number of banner items
func (r *breakingNewsRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.breakingNews), nil
}

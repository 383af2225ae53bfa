package repository

import (
	"context"
	"sort"

	"github.com/news-portal-api/internal/models"
)

// workshopRepo is the in-memory implementation of WorkshopRepository
type workshopRepo struct {
	store *memStore
}

// List returns workshops sorted by date ascending
func (r *workshopRepo) List(ctx context.Context, limit int) ([]*models.Workshop, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.collectLocked(nil)
	sortWorkshopsByDate(all)
	return page(all, limit, 0), nil
}

// ListFeatured returns featured workshops sorted by date ascending
func (r *workshopRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Workshop, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := r.collectLocked(func(w *models.Workshop) bool { return w.IsFeatured })
	sortWorkshopsByDate(matched)
	return page(matched, limit, 0), nil
}

// GetBySlug retrieves a workshop by slug through the slug index
func (r *workshopRepo) GetBySlug(ctx context.Context, slug string) (*models.Workshop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.workshopSlugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneWorkshop(r.store.workshops[id]), nil
}

// Create inserts a new workshop. Slug is unique.
func (r *workshopRepo) Create(ctx context.Context, input *models.WorkshopInput) (*models.Workshop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.workshopSlugs[input.Slug]; exists {
		return nil, ErrConflict
	}

	workshop := &models.Workshop{
		ID:             r.store.nextWorkshopID,
		Title:          input.Title,
		Slug:           input.Slug,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Price:          input.Price,
		AvailableSpots: copySpots(input.AvailableSpots),
		Location:       input.Location,
		IsFeatured:     input.IsFeatured,
	}
	r.store.nextWorkshopID++
	r.store.workshops[workshop.ID] = workshop
	r.store.workshopSlugs[workshop.Slug] = workshop.ID

	return cloneWorkshop(workshop), nil
}

// Count returns the total number of workshops
func (r *workshopRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.workshops), nil
}

func (r *workshopRepo) collectLocked(filter func(*models.Workshop) bool) []*models.Workshop {
	out := make([]*models.Workshop, 0, len(r.store.workshops))
	for _, w := range r.store.workshops {
		if filter == nil || filter(w) {
			out = append(out, cloneWorkshop(w))
		}
	}
	return out
}

func sortWorkshopsByDate(workshops []*models.Workshop) {
	sort.Slice(workshops, func(i, j int) bool {
		if !workshops[i].Date.Equal(workshops[j].Date) {
			return workshops[i].Date.Before(workshops[j].Date)
		}
		return workshops[i].ID < workshops[j].ID
	})
}

func cloneWorkshop(w *models.Workshop) *models.Workshop {
	c := *w
	c.AvailableSpots = copySpots(w.AvailableSpots)
	return &c
}

func copySpots(spots *int) *int {
	if spots == nil {
		return nil
	}
	v := *spots
	return &v
}

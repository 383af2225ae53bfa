package repository

import (
	"context"
	"sort"

	"github.com/news-portal-api/internal/models"
)

// categoryRepo is the in-memory implementation of CategoryRepository
type categoryRepo struct {
	store *memStore
}

// List returns all categories ordered by id
func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID retrieves a category by id
func (r *categoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	category, ok := r.store.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCategory(category), nil
}

// GetBySlug retrieves a category by slug through the slug index
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.categorySlugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCategory(r.store.categories[id]), nil
}

// Create inserts a new category. Name and slug are both unique.
func (r *categoryRepo) Create(ctx context.Context, input *models.CategoryInput) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.categorySlugs[input.Slug]; exists {
		return nil, ErrConflict
	}
	if _, exists := r.store.categoryNames[input.Name]; exists {
		return nil, ErrConflict
	}

	category := &models.Category{
		ID:   r.store.nextCategoryID,
		Name: input.Name,
		Slug: input.Slug,
	}
	r.store.nextCategoryID++
	r.store.categories[category.ID] = category
	r.store.categorySlugs[category.Slug] = category.ID
	r.store.categoryNames[category.Name] = category.ID

	return cloneCategory(category), nil
}

// Count returns the total number of categories
func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.categories), nil
}

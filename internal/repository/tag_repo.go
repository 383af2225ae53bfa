package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/news-portal-api/internal/models"
)

// tagRepo is the in-memory implementation of TagRepository
type tagRepo struct {
	store *memStore
}

// List returns all tags ordered by id
func (r *tagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Tag, 0, len(r.store.tags))
	for _, t := range r.store.tags {
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListPopular ranks tags by how many articles carry the tag name,
// case-insensitively. The count is computed on read rather than maintained
// as a counter; tag cardinality is tiny.
func (r *tagRepo) ListPopular(ctx context.Context, limit int) ([]*models.TagWithCount, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	usage := make(map[string]int)
	for _, a := range r.store.articles {
		for _, name := range a.Tags {
			usage[strings.ToLower(name)]++
		}
	}

	out := make([]*models.TagWithCount, 0, len(r.store.tags))
	for _, t := range r.store.tags {
		out = append(out, &models.TagWithCount{
			Tag:          *t,
			ArticleCount: usage[strings.ToLower(t.Name)],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ArticleCount != out[j].ArticleCount {
			return out[i].ArticleCount > out[j].ArticleCount
		}
		return out[i].ID < out[j].ID
	})
	return page(out, limit, 0), nil
}

// Create inserts a new tag. Name and slug are both unique.
func (r *tagRepo) Create(ctx context.Context, input *models.TagInput) (*models.Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.tagSlugs[input.Slug]; exists {
		return nil, ErrConflict
	}
	if _, exists := r.store.tagNames[input.Name]; exists {
		return nil, ErrConflict
	}

	tag := &models.Tag{
		ID:   r.store.nextTagID,
		Name: input.Name,
		Slug: input.Slug,
	}
	r.store.nextTagID++
	r.store.tags[tag.ID] = tag
	r.store.tagSlugs[tag.Slug] = tag.ID
	r.store.tagNames[tag.Name] = tag.ID

	copied := *tag
	return &copied, nil
}

// Count returns the total number of tags
func (r *tagRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.tags), nil
}

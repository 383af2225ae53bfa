package postgres

import (
	"context"
	"fmt"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

// tagRepo is the postgres implementation of TagRepository
type tagRepo struct {
	db *database.DB
}

func (r *tagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// ListPopular ranks tags by the number of articles whose tags array contains
// the tag name, case-insensitively
func (r *tagRepo) ListPopular(ctx context.Context, limit int) ([]*models.TagWithCount, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.slug, COUNT(a.id) AS article_count
		FROM tags t
		LEFT JOIN articles a
			ON EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(a.tags) AS elem
				WHERE LOWER(elem) = LOWER(t.name)
			)
		GROUP BY t.id, t.name, t.slug
		ORDER BY article_count DESC, t.id %s`, limitClause(limit))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*models.TagWithCount{}
	for rows.Next() {
		var t models.TagWithCount
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.ArticleCount); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

func (r *tagRepo) Create(ctx context.Context, input *models.TagInput) (*models.Tag, error) {
	tag := &models.Tag{Name: input.Name, Slug: input.Slug}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id`,
		input.Name, input.Slug).Scan(&tag.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return tag, nil
}

func (r *tagRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags`).Scan(&count)
	return count, err
}

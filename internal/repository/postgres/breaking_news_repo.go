package postgres

import (
	"context"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

// breakingNewsRepo is the postgres implementation of BreakingNewsRepository
type breakingNewsRepo struct {
	db *database.DB
}

func (r *breakingNewsRepo) ListActive(ctx context.Context) ([]*models.BreakingNews, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, is_active, created_at FROM breaking_news
		WHERE is_active ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.BreakingNews{}
	for rows.Next() {
		var b models.BreakingNews
		if err := rows.Scan(&b.ID, &b.Content, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}

func (r *breakingNewsRepo) Create(ctx context.Context, input *models.BreakingNewsInput) (*models.BreakingNews, error) {
	item := &models.BreakingNews{Content: input.Content, IsActive: input.IsActive}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO breaking_news (content, is_active) VALUES ($1, $2)
		RETURNING id, created_at`,
		input.Content, input.IsActive,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *breakingNewsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breaking_news`).Scan(&count)
	return count, err
}

package postgres

import (
	"context"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

// categoryRepo is the postgres implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, article_count FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ArticleCount); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, article_count FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.ArticleCount)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, article_count FROM categories WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &c.ArticleCount)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, input *models.CategoryInput) (*models.Category, error) {
	category := &models.Category{Name: input.Name, Slug: input.Slug}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		input.Name, input.Slug).Scan(&category.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return category, nil
}

func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

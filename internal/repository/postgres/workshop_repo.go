package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

const workshopColumns = `id, title, slug, description, image_url, date, start_time, end_time,
	price, available_spots, location, is_featured`

// workshopRepo is the postgres implementation of WorkshopRepository
type workshopRepo struct {
	db *database.DB
}

func (r *workshopRepo) List(ctx context.Context, limit int) ([]*models.Workshop, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM workshops ORDER BY date, id %s`, workshopColumns, limitClause(limit))
	return r.queryWorkshops(ctx, query)
}

func (r *workshopRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Workshop, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM workshops WHERE is_featured ORDER BY date, id %s`,
		workshopColumns, limitClause(limit))
	return r.queryWorkshops(ctx, query)
}

func (r *workshopRepo) GetBySlug(ctx context.Context, slug string) (*models.Workshop, error) {
	query := fmt.Sprintf(`SELECT %s FROM workshops WHERE slug = $1`, workshopColumns)
	workshop, err := scanWorkshop(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, mapError(err)
	}
	return workshop, nil
}

func (r *workshopRepo) Create(ctx context.Context, input *models.WorkshopInput) (*models.Workshop, error) {
	workshop := &models.Workshop{
		Title:          input.Title,
		Slug:           input.Slug,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Price:          input.Price,
		AvailableSpots: input.AvailableSpots,
		Location:       input.Location,
		IsFeatured:     input.IsFeatured,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO workshops (title, slug, description, image_url, date, start_time, end_time,
			price, available_spots, location, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		input.Title, input.Slug, input.Description, input.ImageURL, input.Date,
		input.StartTime, input.EndTime, input.Price, input.AvailableSpots,
		input.Location, input.IsFeatured,
	).Scan(&workshop.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return workshop, nil
}

func (r *workshopRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workshops`).Scan(&count)
	return count, err
}

func (r *workshopRepo) queryWorkshops(ctx context.Context, query string, args ...interface{}) ([]*models.Workshop, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workshops := []*models.Workshop{}
	for rows.Next() {
		workshop, err := scanWorkshop(rows)
		if err != nil {
			return nil, err
		}
		workshops = append(workshops, workshop)
	}
	return workshops, rows.Err()
}

func scanWorkshop(row scanTarget) (*models.Workshop, error) {
	var w models.Workshop
	var spots sql.NullInt64

	err := row.Scan(
		&w.ID, &w.Title, &w.Slug, &w.Description, &w.ImageURL, &w.Date,
		&w.StartTime, &w.EndTime, &w.Price, &spots, &w.Location, &w.IsFeatured,
	)
	if err != nil {
		return nil, err
	}
	if spots.Valid {
		v := int(spots.Int64)
		w.AvailableSpots = &v
	}
	return &w, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

const eventColumns = `id, title, description, date, location, price, button_text, button_action, border_color`

// eventRepo is the postgres implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

func (r *eventRepo) List(ctx context.Context, limit int) ([]*models.Event, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY date, id %s`, eventColumns, limitClause(limit))
	return r.queryEvents(ctx, query)
}

func (r *eventRepo) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM events WHERE date >= NOW() ORDER BY date, id %s`,
		eventColumns, limitClause(limit))
	return r.queryEvents(ctx, query)
}

func (r *eventRepo) Create(ctx context.Context, input *models.EventInput) (*models.Event, error) {
	event := &models.Event{
		Title:        input.Title,
		Description:  input.Description,
		Date:         input.Date,
		Location:     input.Location,
		Price:        input.Price,
		ButtonText:   input.ButtonText,
		ButtonAction: input.ButtonAction,
		BorderColor:  input.BorderColor,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO events (title, description, date, location, price, button_text, button_action, border_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		input.Title, input.Description, input.Date, input.Location, input.Price,
		input.ButtonText, input.ButtonAction, input.BorderColor,
	).Scan(&event.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return event, nil
}

func (r *eventRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *eventRepo) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		var e models.Event
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
			&e.Price, &e.ButtonText, &e.ButtonAction, &e.BorderColor)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

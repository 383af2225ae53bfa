package postgres

import (
	"context"
	"database/sql"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
)

// subscriberRepo is the postgres implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// Create subscribes an email address idempotently: the conflict target on
// email turns a duplicate insert into a no-op and the existing record is
// returned with created == false.
func (r *subscriberRepo) Create(ctx context.Context, input *models.SubscriberInput) (*models.Subscriber, bool, error) {
	var sub models.Subscriber
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (name, email) VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, name, email, subscribed_at`,
		input.Name, input.Email,
	).Scan(&sub.ID, &sub.Name, &sub.Email, &sub.SubscribedAt)
	if err == nil {
		return &sub, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	existing, err := r.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, subscribed_at FROM subscribers WHERE email = $1`, email).
		Scan(&sub.ID, &sub.Name, &sub.Email, &sub.SubscribedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &sub, nil
}

func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&count)
	return count, err
}

// Package postgres implements the repository interfaces on PostgreSQL.
// It is behavior-compatible with the in-memory store and selected via
// STORAGE_DRIVER=postgres.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/repository"
)

// New creates the postgres-backed repository set
func New(db *database.DB, weights repository.PopularityWeights) *repository.Repositories {
	return &repository.Repositories{
		Article:      &articleRepo{db: db, weights: weights},
		Category:     &categoryRepo{db: db},
		Tag:          &tagRepo{db: db},
		Workshop:     &workshopRepo{db: db},
		Event:        &eventRepo{db: db},
		Subscriber:   &subscriberRepo{db: db},
		BreakingNews: &breakingNewsRepo{db: db},
	}
}

// Postgres error codes mapped onto the store's failure classes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError translates driver errors into the shared store errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return repository.ErrConflict
		case codeForeignKeyViolation:
			return repository.ErrNotFound
		}
	}
	return err
}

// checkPage rejects negative paging values at the store boundary
func checkPage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return repository.ErrInvalidArgument
	}
	return nil
}

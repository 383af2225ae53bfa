// Package seed populates the content store at startup, before the HTTP
// layer is wired, so callers never observe a partially seeded state.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Dataset is the full seed payload. The embedded default can be replaced by
// a YAML file through the SEED_FILE setting.
type Dataset struct {
	Categories   []models.CategoryInput     `yaml:"categories"`
	Tags         []models.TagInput          `yaml:"tags"`
	Articles     []ArticleSeed              `yaml:"articles"`
	Workshops    []models.WorkshopInput     `yaml:"workshops"`
	Events       []models.EventInput        `yaml:"events"`
	BreakingNews []models.BreakingNewsInput `yaml:"breaking_news"`
	Subscribers  []models.SubscriberInput   `yaml:"subscribers"`
}

// ArticleSeed references its category by slug instead of id, so seed files
// stay valid regardless of insertion order.
type ArticleSeed struct {
	models.ArticleInput `yaml:",inline"`
	CategorySlug        string `yaml:"category_slug"`
}

// Result summarizes a seeding run
type Result struct {
	Inserted int
	Skipped  int
}

// Loader inserts a dataset into the repositories
type Loader struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewLoader creates a seed loader
func NewLoader(repos *repository.Repositories, log zerolog.Logger) *Loader {
	return &Loader{
		repos: repos,
		log:   log.With().Str("component", "seed").Logger(),
	}
}

// LoadFile reads a YAML dataset from disk
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &ds, nil
}

// Run inserts the dataset. Re-running is idempotent by skipping any entity
// whose unique key (slug, name, email) is already present; everything else
// is appended with fresh ids.
func (l *Loader) Run(ctx context.Context, ds *Dataset) (*Result, error) {
	res := &Result{}

	for i := range ds.Categories {
		if err := l.insert(res, l.createCategory(ctx, &ds.Categories[i])); err != nil {
			return nil, fmt.Errorf("seed category %q: %w", ds.Categories[i].Slug, err)
		}
	}
	for i := range ds.Tags {
		if err := l.insert(res, l.createTag(ctx, &ds.Tags[i])); err != nil {
			return nil, fmt.Errorf("seed tag %q: %w", ds.Tags[i].Slug, err)
		}
	}
	for i := range ds.Articles {
		if err := l.insert(res, l.createArticle(ctx, &ds.Articles[i])); err != nil {
			return nil, fmt.Errorf("seed article %q: %w", ds.Articles[i].Slug, err)
		}
	}
	for i := range ds.Workshops {
		if err := l.insert(res, l.createWorkshop(ctx, &ds.Workshops[i])); err != nil {
			return nil, fmt.Errorf("seed workshop %q: %w", ds.Workshops[i].Slug, err)
		}
	}
	// Events and breaking news carry no unique key, so idempotency is
	// approximated by only seeding them into empty tables.
	if n, err := l.repos.Event.Count(ctx); err == nil && n == 0 {
		for i := range ds.Events {
			if _, err := l.repos.Event.Create(ctx, &ds.Events[i]); err != nil {
				return nil, fmt.Errorf("seed event %q: %w", ds.Events[i].Title, err)
			}
			res.Inserted++
		}
	} else if err == nil {
		res.Skipped += len(ds.Events)
	}
	if n, err := l.repos.BreakingNews.Count(ctx); err == nil && n == 0 {
		for i := range ds.BreakingNews {
			if _, err := l.repos.BreakingNews.Create(ctx, &ds.BreakingNews[i]); err != nil {
				return nil, fmt.Errorf("seed breaking news: %w", err)
			}
			res.Inserted++
		}
	} else if err == nil {
		res.Skipped += len(ds.BreakingNews)
	}
	for i := range ds.Subscribers {
		_, created, err := l.repos.Subscriber.Create(ctx, &ds.Subscribers[i])
		if err != nil {
			return nil, fmt.Errorf("seed subscriber %q: %w", ds.Subscribers[i].Email, err)
		}
		l.count(res, created)
	}

	l.log.Info().Int("inserted", res.Inserted).Int("skipped", res.Skipped).Msg("Seed completed")
	return res, nil
}

// insert folds a create outcome into the result, treating conflicts on
// unique keys as skips
func (l *Loader) insert(res *Result, err error) error {
	if err == nil {
		res.Inserted++
		return nil
	}
	if errors.Is(err, repository.ErrConflict) {
		res.Skipped++
		return nil
	}
	return err
}

func (l *Loader) count(res *Result, created bool) {
	if created {
		res.Inserted++
	} else {
		res.Skipped++
	}
}

func (l *Loader) createCategory(ctx context.Context, input *models.CategoryInput) error {
	_, err := l.repos.Category.Create(ctx, input)
	return err
}

func (l *Loader) createTag(ctx context.Context, input *models.TagInput) error {
	_, err := l.repos.Tag.Create(ctx, input)
	return err
}

func (l *Loader) createArticle(ctx context.Context, seed *ArticleSeed) error {
	input := seed.ArticleInput
	if seed.CategorySlug != "" {
		category, err := l.repos.Category.GetBySlug(ctx, seed.CategorySlug)
		if err != nil {
			return fmt.Errorf("unknown category slug %q: %w", seed.CategorySlug, err)
		}
		input.CategoryID = category.ID
	}
	_, err := l.repos.Article.Create(ctx, &input)
	return err
}

func (l *Loader) createWorkshop(ctx context.Context, input *models.WorkshopInput) error {
	_, err := l.repos.Workshop.Create(ctx, input)
	return err
}

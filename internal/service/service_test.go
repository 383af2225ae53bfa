package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/rs/zerolog"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()
	repos := repository.NewMemory(repository.DefaultPopularityWeights())
	return NewServices(repos, zerolog.Nop()), repos
}

func mustCategory(t *testing.T, repos *repository.Repositories) *models.Category {
	t.Helper()
	category, err := repos.Category.Create(context.Background(), &models.CategoryInput{Name: "Politics", Slug: "politics"})
	if err != nil {
		t.Fatalf("Create category failed: %v", err)
	}
	return category
}

func TestArticleCreateValidation(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()
	mustCategory(t, repos)

	_, err := services.Article.Create(ctx, &models.ArticleInput{Slug: "t", Content: "c"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	fields := make(map[string]bool)
	for _, d := range verr.Details {
		fields[d.Field] = true
	}
	for _, want := range []string{"title", "category_id", "published_at"} {
		if !fields[want] {
			t.Errorf("Expected detail for %s, got %+v", want, verr.Details)
		}
	}

	// Validation runs before the repository is touched
	count, _ := repos.Article.Count(ctx)
	if count != 0 {
		t.Errorf("Expected no article stored, got %d", count)
	}
}

func TestArticleCreateOK(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()
	category := mustCategory(t, repos)

	article, err := services.Article.Create(ctx, &models.ArticleInput{
		Title: "T", Slug: "t", Content: "c",
		CategoryID: category.ID, PublishedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if article.ID == 0 || article.ViewCount != 0 {
		t.Errorf("Unexpected created article: %+v", article)
	}
}

func TestArticleRead(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()
	category := mustCategory(t, repos)

	created, err := repos.Article.Create(ctx, &models.ArticleInput{
		Title: "T", Slug: "budget-approved", Content: "c",
		CategoryID: category.ID, PublishedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bySlug, err := services.Article.Read(ctx, "budget-approved")
	if err != nil {
		t.Fatalf("Read by slug failed: %v", err)
	}
	if bySlug.ViewCount != 1 {
		t.Errorf("Expected view count 1 after first read, got %d", bySlug.ViewCount)
	}

	// Numeric strings resolve by id and also count a view
	byID, err := services.Article.Read(ctx, "1")
	if err != nil {
		t.Fatalf("Read by id failed: %v", err)
	}
	if byID.ID != created.ID || byID.ViewCount != 2 {
		t.Errorf("Expected id %d with view count 2, got %+v", created.ID, byID)
	}

	if _, err := services.Article.Read(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	first, created, err := services.Newsletter.Subscribe(ctx, &models.SubscriberInput{Email: "  Ana@Example.COM "})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !created {
		t.Error("Expected created=true for first subscription")
	}
	if first.Email != "ana@example.com" {
		t.Errorf("Expected normalized email, got %q", first.Email)
	}

	// The normalized form dedupes against other spellings of the same address
	second, created, err := services.Newsletter.Subscribe(ctx, &models.SubscriberInput{Email: "ANA@example.com"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if created {
		t.Error("Expected created=false for duplicate email")
	}
	if second.ID != first.ID {
		t.Errorf("Expected same subscriber id, got %d and %d", first.ID, second.ID)
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	services, _ := newTestServices(t)

	_, _, err := services.Newsletter.Subscribe(context.Background(), &models.SubscriberInput{Email: "not-an-email"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

func TestCounts(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()
	category := mustCategory(t, repos)

	if _, err := repos.Article.Create(ctx, &models.ArticleInput{
		Title: "T", Slug: "t", Content: "c",
		CategoryID: category.ID, PublishedAt: time.Now(),
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	counts := services.Counts(ctx)
	if counts["categories"] != 1 || counts["articles"] != 1 {
		t.Errorf("Unexpected counts: %+v", counts)
	}
	if counts["subscribers"] != 0 {
		t.Errorf("Expected zero subscribers, got %d", counts["subscribers"])
	}
}

func TestWorkshopCreateValidation(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Workshop.Create(context.Background(), &models.WorkshopInput{Title: "W", Slug: "w", StartTime: "26:99"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

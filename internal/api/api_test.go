package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

type testEnv struct {
	router *gin.Engine
	repos  *repository.Repositories
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := repository.NewMemory(repository.DefaultPopularityWeights())
	services := service.NewServices(repos, zerolog.Nop())
	router := NewRouter(services, &config.Config{}, zerolog.Nop(), nil)
	return &testEnv{router: router, repos: repos}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal body failed: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedCategory(t *testing.T, name, slug string) *models.Category {
	t.Helper()
	category, err := e.repos.Category.Create(context.Background(), &models.CategoryInput{Name: name, Slug: slug})
	if err != nil {
		t.Fatalf("Seed category failed: %v", err)
	}
	return category
}

func (e *testEnv) seedArticle(t *testing.T, input *models.ArticleInput) *models.Article {
	t.Helper()
	article, err := e.repos.Article.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Seed article failed: %v", err)
	}
	return article
}

func decodeArticles(t *testing.T, w *httptest.ResponseRecorder) []models.Article {
	t.Helper()
	var articles []models.Article
	if err := json.Unmarshal(w.Body.Bytes(), &articles); err != nil {
		t.Fatalf("Decode article list failed: %v, body: %s", err, w.Body.String())
	}
	return articles
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", body["status"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on response")
	}
}

func TestHealthEndpointUnhealthyBackend(t *testing.T) {
	repos := repository.NewMemory(repository.DefaultPopularityWeights())
	services := service.NewServices(repos, zerolog.Nop())
	check := func(ctx context.Context) error { return fmt.Errorf("connection refused") }
	router := NewRouter(services, &config.Config{}, zerolog.Nop(), check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 when the backend check fails, got %d", w.Code)
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("Expected client-supplied request id, got %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, "Politics", "politics")

	w := env.do(t, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body struct {
		Database map[string]int `json:"database"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body.Database["categories"] != 1 {
		t.Errorf("Expected 1 category in metrics, got %+v", body.Database)
	}
}

func TestListArticlesDispatch(t *testing.T) {
	env := newTestEnv(t)
	politics := env.seedCategory(t, "Politics", "politics")
	economy := env.seedCategory(t, "Economy", "economy")

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	env.seedArticle(t, &models.ArticleInput{
		Title: "Plain old news", Slug: "plain", Content: "c",
		CategoryID: politics.ID, PublishedAt: base,
	})
	env.seedArticle(t, &models.ArticleInput{
		Title: "Front page", Slug: "front-page", Content: "c",
		CategoryID: politics.ID, PublishedAt: base.Add(time.Hour), IsFeatured: true,
	})
	env.seedArticle(t, &models.ArticleInput{
		Title: "Going viral", Slug: "going-viral", Content: "c",
		CategoryID: economy.ID, PublishedAt: base.Add(2 * time.Hour), IsViral: true,
	})

	tests := []struct {
		name      string
		path      string
		wantSlugs []string
	}{
		{name: "plain listing newest first", path: "/v1/articles", wantSlugs: []string{"going-viral", "front-page", "plain"}},
		{name: "plain listing with limit", path: "/v1/articles?limit=2", wantSlugs: []string{"going-viral", "front-page"}},
		{name: "featured", path: "/v1/articles?featured=true", wantSlugs: []string{"front-page"}},
		{name: "featured flag without value", path: "/v1/articles?featured", wantSlugs: []string{"front-page"}},
		{name: "viral", path: "/v1/articles?viral=true&limit=0", wantSlugs: []string{"going-viral"}},
		{name: "latest", path: "/v1/articles?latest=true&limit=2", wantSlugs: []string{"going-viral", "front-page"}},
		{name: "by category slug", path: "/v1/articles?category=economy", wantSlugs: []string{"going-viral"}},
		{name: "by category id", path: fmt.Sprintf("/v1/articles?category=%d", politics.ID), wantSlugs: []string{"front-page", "plain"}},
		{name: "unknown category is empty", path: "/v1/articles?category=nope", wantSlugs: []string{}},
		{name: "search title", path: "/v1/articles?search=viral", wantSlugs: []string{"going-viral"}},
		{name: "search no match", path: "/v1/articles?search=zzz", wantSlugs: []string{}},
		{name: "featured wins over search", path: "/v1/articles?featured=true&search=viral", wantSlugs: []string{"front-page"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d, body: %s", w.Code, w.Body.String())
			}
			articles := decodeArticles(t, w)
			if len(articles) != len(tt.wantSlugs) {
				t.Fatalf("Expected %d articles, got %d: %s", len(tt.wantSlugs), len(articles), w.Body.String())
			}
			for i, slug := range tt.wantSlugs {
				if articles[i].Slug != slug {
					t.Errorf("Position %d: expected %s, got %s", i, slug, articles[i].Slug)
				}
			}
		})
	}
}

func TestListArticlesBadPaging(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/v1/articles?limit=-1",
		"/v1/articles?offset=-5",
		"/v1/articles?limit=abc",
	} {
		w := env.do(t, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/articles?search=", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty search, got %d", w.Code)
	}
}

func TestGetArticleCountsView(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t, "Politics", "politics")
	env.seedArticle(t, &models.ArticleInput{
		Title: "T", Slug: "budget-approved", Content: "c",
		CategoryID: category.ID, PublishedAt: time.Now(),
	})

	for i := 1; i <= 3; i++ {
		w := env.do(t, http.MethodGet, "/v1/articles/budget-approved", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		var article models.Article
		if err := json.Unmarshal(w.Body.Bytes(), &article); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if article.ViewCount != i {
			t.Errorf("Read %d: expected view count %d, got %d", i, i, article.ViewCount)
		}
	}

	// Numeric path segments resolve by id
	w := env.do(t, http.MethodGet, "/v1/articles/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 by id, got %d", w.Code)
	}

	if w := env.do(t, http.MethodGet, "/v1/articles/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCreateArticle(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t, "Politics", "politics")

	payload := map[string]interface{}{
		"title":        "Budget approved",
		"slug":         "budget-approved",
		"content":      "Full text",
		"category_id":  category.ID,
		"published_at": time.Now().Format(time.RFC3339),
		"tags":         []string{"budget"},
	}

	w := env.do(t, http.MethodPost, "/v1/articles", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d, body: %s", w.Code, w.Body.String())
	}
	var article models.Article
	if err := json.Unmarshal(w.Body.Bytes(), &article); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if article.ID != 1 || article.ViewCount != 0 {
		t.Errorf("Unexpected created article: %+v", article)
	}

	// Same slug again conflicts
	if w := env.do(t, http.MethodPost, "/v1/articles", payload); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate slug, got %d", w.Code)
	}

	// Unknown category is a 404
	payload["slug"] = "other"
	payload["category_id"] = 999
	if w := env.do(t, http.MethodPost, "/v1/articles", payload); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown category, got %d", w.Code)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/articles", map[string]interface{}{"slug": "t"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(body.Details) == 0 {
		t.Errorf("Expected field details in validation response, got %s", w.Body.String())
	}
}

func TestCategoryEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/categories", map[string]string{"name": "Politics", "slug": "politics"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d, body: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/v1/categories/politics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var category models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &category); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if category.Name != "Politics" {
		t.Errorf("Unexpected category: %+v", category)
	}

	env.seedArticle(t, &models.ArticleInput{
		Title: "T", Slug: "t", Content: "c",
		CategoryID: category.ID, PublishedAt: time.Now(),
	})
	w = env.do(t, http.MethodGet, "/v1/categories/politics/articles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if articles := decodeArticles(t, w); len(articles) != 1 {
		t.Errorf("Expected 1 article, got %d", len(articles))
	}

	if w := env.do(t, http.MethodGet, "/v1/categories/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestSubscribeStatusCodes(t *testing.T) {
	env := newTestEnv(t)
	payload := map[string]string{"name": "Ana", "email": "ana@example.com"}

	w := env.do(t, http.MethodPost, "/v1/subscribers", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 on first subscribe, got %d, body: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/v1/subscribers", payload)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 on repeat subscribe, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/v1/subscribers", map[string]string{"email": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid email, got %d", w.Code)
	}
}

func TestWorkshopEndpoints(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]interface{}{
		"title": "Data journalism",
		"slug":  "data-journalism",
		"date":  time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	}
	w := env.do(t, http.MethodPost, "/v1/workshops", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d, body: %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodGet, "/v1/workshops/data-journalism", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/v1/workshops?featured=true", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestEventUpcomingFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.repos.Event.Create(ctx, &models.EventInput{Title: "Past", Date: time.Now().Add(-24 * time.Hour)}); err != nil {
		t.Fatalf("Seed event failed: %v", err)
	}
	if _, err := env.repos.Event.Create(ctx, &models.EventInput{Title: "Future", Date: time.Now().Add(24 * time.Hour)}); err != nil {
		t.Fatalf("Seed event failed: %v", err)
	}

	w := env.do(t, http.MethodGet, "/v1/events?upcoming=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var events []models.Event
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Future" {
		t.Errorf("Expected only the future event, got %+v", events)
	}
}

func TestBreakingNewsEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/breaking-news", map[string]interface{}{"content": "live", "is_active": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d, body: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/v1/breaking-news", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var items []models.BreakingNews
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(items) != 1 || items[0].Content != "live" {
		t.Errorf("Expected the active item, got %+v", items)
	}
}

func TestPopularTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	category := env.seedCategory(t, "Tech", "tech")

	if _, err := env.repos.Tag.Create(ctx, &models.TagInput{Name: "ai", Slug: "ai"}); err != nil {
		t.Fatalf("Seed tag failed: %v", err)
	}
	env.seedArticle(t, &models.ArticleInput{
		Title: "T", Slug: "t", Content: "c", Tags: []string{"ai"},
		CategoryID: category.ID, PublishedAt: time.Now(),
	})

	w := env.do(t, http.MethodGet, "/v1/tags?popular=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d, body: %s", w.Code, w.Body.String())
	}
	var tags []models.TagWithCount
	if err := json.Unmarshal(w.Body.Bytes(), &tags); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(tags) != 1 || tags[0].ArticleCount != 1 {
		t.Errorf("Expected ai with one article, got %+v", tags)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/articles", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}
}

package validation

import (
	"testing"
	"time"

	"github.com/news-portal-api/internal/models"
)

func fieldSet(errs []Error) map[string]bool {
	out := make(map[string]bool, len(errs))
	for _, e := range errs {
		out[e.Field] = true
	}
	return out
}

func TestValidateArticle(t *testing.T) {
	valid := func() *models.ArticleInput {
		return &models.ArticleInput{
			Title:       "Budget approved",
			Slug:        "budget-approved",
			Content:     "Full text",
			CategoryID:  1,
			PublishedAt: time.Now(),
		}
	}

	tests := []struct {
		name       string
		mutate     func(*models.ArticleInput)
		wantFields []string
	}{
		{
			name:   "valid input",
			mutate: func(in *models.ArticleInput) {},
		},
		{
			name:       "missing title",
			mutate:     func(in *models.ArticleInput) { in.Title = "  " },
			wantFields: []string{"title"},
		},
		{
			name:       "missing slug",
			mutate:     func(in *models.ArticleInput) { in.Slug = "" },
			wantFields: []string{"slug"},
		},
		{
			name:       "bad slug format",
			mutate:     func(in *models.ArticleInput) { in.Slug = "Not A Slug" },
			wantFields: []string{"slug"},
		},
		{
			name:       "missing content",
			mutate:     func(in *models.ArticleInput) { in.Content = "" },
			wantFields: []string{"content"},
		},
		{
			name:       "zero category",
			mutate:     func(in *models.ArticleInput) { in.CategoryID = 0 },
			wantFields: []string{"category_id"},
		},
		{
			name:       "negative category",
			mutate:     func(in *models.ArticleInput) { in.CategoryID = -3 },
			wantFields: []string{"category_id"},
		},
		{
			name:       "zero published_at",
			mutate:     func(in *models.ArticleInput) { in.PublishedAt = time.Time{} },
			wantFields: []string{"published_at"},
		},
		{
			name:       "blank tag",
			mutate:     func(in *models.ArticleInput) { in.Tags = []string{"ok", " "} },
			wantFields: []string{"tags[1]"},
		},
		{
			name: "multiple failures reported together",
			mutate: func(in *models.ArticleInput) {
				in.Title = ""
				in.CategoryID = 0
			},
			wantFields: []string{"title", "category_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)
			errs := ValidateArticle(input)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %d: %+v", len(tt.wantFields), len(errs), errs)
			}
			got := fieldSet(errs)
			for _, field := range tt.wantFields {
				if !got[field] {
					t.Errorf("Expected error on field %s, got %+v", field, errs)
				}
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name       string
		input      *models.CategoryInput
		wantFields []string
	}{
		{name: "valid", input: &models.CategoryInput{Name: "Politics", Slug: "politics"}},
		{name: "missing name", input: &models.CategoryInput{Slug: "politics"}, wantFields: []string{"name"}},
		{name: "missing slug", input: &models.CategoryInput{Name: "Politics"}, wantFields: []string{"slug"}},
		{name: "uppercase slug", input: &models.CategoryInput{Name: "Politics", Slug: "Politics"}, wantFields: []string{"slug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCategory(tt.input)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %+v", len(tt.wantFields), errs)
			}
			got := fieldSet(errs)
			for _, field := range tt.wantFields {
				if !got[field] {
					t.Errorf("Expected error on field %s, got %+v", field, errs)
				}
			}
		})
	}
}

func TestValidateWorkshop(t *testing.T) {
	negative := -1
	tests := []struct {
		name       string
		input      *models.WorkshopInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: &models.WorkshopInput{Title: "W", Slug: "w", Date: time.Now(), StartTime: "09:30", EndTime: "17:00"},
		},
		{
			name:       "missing date",
			input:      &models.WorkshopInput{Title: "W", Slug: "w"},
			wantFields: []string{"date"},
		},
		{
			name:       "bad start time",
			input:      &models.WorkshopInput{Title: "W", Slug: "w", Date: time.Now(), StartTime: "25:00"},
			wantFields: []string{"start_time"},
		},
		{
			name:       "bad end time",
			input:      &models.WorkshopInput{Title: "W", Slug: "w", Date: time.Now(), EndTime: "9:5"},
			wantFields: []string{"end_time"},
		},
		{
			name:       "negative price",
			input:      &models.WorkshopInput{Title: "W", Slug: "w", Date: time.Now(), Price: -10},
			wantFields: []string{"price"},
		},
		{
			name:       "negative spots",
			input:      &models.WorkshopInput{Title: "W", Slug: "w", Date: time.Now(), AvailableSpots: &negative},
			wantFields: []string{"available_spots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateWorkshop(tt.input)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %+v", len(tt.wantFields), errs)
			}
			got := fieldSet(errs)
			for _, field := range tt.wantFields {
				if !got[field] {
					t.Errorf("Expected error on field %s, got %+v", field, errs)
				}
			}
		})
	}
}

func TestValidateSubscriber(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "ana@example.com"},
		{name: "valid with plus", email: "ana+news@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "blank", email: "   ", wantErr: true},
		{name: "no at sign", email: "ana.example.com", wantErr: true},
		{name: "no tld", email: "ana@example", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSubscriber(&models.SubscriberInput{Email: tt.email})
			if tt.wantErr && len(errs) == 0 {
				t.Errorf("Expected validation error for %q", tt.email)
			}
			if !tt.wantErr && len(errs) != 0 {
				t.Errorf("Expected no errors for %q, got %+v", tt.email, errs)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	if errs := ValidateEvent(&models.EventInput{Title: "E", Date: time.Now()}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}
	errs := ValidateEvent(&models.EventInput{})
	got := fieldSet(errs)
	if !got["title"] || !got["date"] {
		t.Errorf("Expected title and date errors, got %+v", errs)
	}
}

func TestValidateBreakingNews(t *testing.T) {
	if errs := ValidateBreakingNews(&models.BreakingNewsInput{Content: "live"}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}
	if errs := ValidateBreakingNews(&models.BreakingNewsInput{}); len(errs) != 1 || errs[0].Field != "content" {
		t.Errorf("Expected content error, got %+v", errs)
	}
}

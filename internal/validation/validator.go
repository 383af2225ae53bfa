package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/news-portal-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Error represents a single field-level validation error
type Error struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticle checks an article create payload. Title, slug, content and
// category_id are the required set; published_at must be set so recency
// sorting stays meaningful.
func ValidateArticle(input *models.ArticleInput) []Error {
	var errs []Error

	errs = appendRequired(errs, "title", input.Title)
	errs = appendSlug(errs, input.Slug)
	errs = appendRequired(errs, "content", input.Content)

	if input.CategoryID <= 0 {
		errs = append(errs, Error{
			Field:   "category_id",
			Message: "category_id is required and must be positive",
			Value:   input.CategoryID,
		})
	}
	if input.PublishedAt.IsZero() {
		errs = append(errs, Error{Field: "published_at", Message: "published_at is required"})
	}
	for i, tag := range input.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, Error{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: "tag must not be blank",
			})
		}
	}

	return errs
}

// ValidateCategory checks a category create payload
func ValidateCategory(input *models.CategoryInput) []Error {
	var errs []Error
	errs = appendRequired(errs, "name", input.Name)
	errs = appendSlug(errs, input.Slug)
	return errs
}

// ValidateTag checks a tag create payload
func ValidateTag(input *models.TagInput) []Error {
	var errs []Error
	errs = appendRequired(errs, "name", input.Name)
	errs = appendSlug(errs, input.Slug)
	return errs
}

// ValidateWorkshop checks a workshop create payload
func ValidateWorkshop(input *models.WorkshopInput) []Error {
	var errs []Error

	errs = appendRequired(errs, "title", input.Title)
	errs = appendSlug(errs, input.Slug)

	if input.Date.IsZero() {
		errs = append(errs, Error{Field: "date", Message: "date is required"})
	}
	if input.StartTime != "" && !timeRegex.MatchString(input.StartTime) {
		errs = append(errs, Error{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
			Value:   input.StartTime,
		})
	}
	if input.EndTime != "" && !timeRegex.MatchString(input.EndTime) {
		errs = append(errs, Error{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
			Value:   input.EndTime,
		})
	}
	if input.Price < 0 {
		errs = append(errs, Error{Field: "price", Message: "price must not be negative", Value: input.Price})
	}
	if input.AvailableSpots != nil && *input.AvailableSpots < 0 {
		errs = append(errs, Error{
			Field:   "available_spots",
			Message: "available_spots must not be negative",
			Value:   *input.AvailableSpots,
		})
	}

	return errs
}

// ValidateEvent checks an event create payload
func ValidateEvent(input *models.EventInput) []Error {
	var errs []Error
	errs = appendRequired(errs, "title", input.Title)
	if input.Date.IsZero() {
		errs = append(errs, Error{Field: "date", Message: "date is required"})
	}
	return errs
}

// ValidateSubscriber checks a newsletter signup payload
func ValidateSubscriber(input *models.SubscriberInput) []Error {
	var errs []Error
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, Error{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(input.Email) {
		errs = append(errs, Error{Field: "email", Message: "email format is invalid", Value: input.Email})
	}
	return errs
}

// ValidateBreakingNews checks a banner item create payload
func ValidateBreakingNews(input *models.BreakingNewsInput) []Error {
	var errs []Error
	errs = appendRequired(errs, "content", input.Content)
	return errs
}

func appendRequired(errs []Error, field, value string) []Error {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, Error{Field: field, Message: field + " is required"})
	}
	return errs
}

func appendSlug(errs []Error, slug string) []Error {
	if strings.TrimSpace(slug) == "" {
		return append(errs, Error{Field: "slug", Message: "slug is required"})
	}
	if !slugRegex.MatchString(slug) {
		return append(errs, Error{
			Field:   "slug",
			Message: "slug must contain only lowercase letters, digits and hyphens",
			Value:   slug,
		})
	}
	return errs
}

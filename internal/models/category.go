package models

// Category groups articles under a unique name and URL slug.
// ArticleCount is denormalized: it is incremented by the store whenever an
// article referencing the category is created.
type Category struct {
	ID           int    `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Slug         string `json:"slug" db:"slug"`
	ArticleCount int    `json:"article_count" db:"article_count"`
}

// CategoryInput is the payload accepted when creating a category
type CategoryInput struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// Tag is a free-form label attached to articles by name
type Tag struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// TagInput is the payload accepted when creating a tag
type TagInput struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// TagWithCount pairs a tag with the number of articles carrying it,
// used by the popular-tags listing.
type TagWithCount struct {
	Tag
	ArticleCount int `json:"article_count"`
}

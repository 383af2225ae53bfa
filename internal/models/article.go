package models

import (
	"time"
)

// Article represents a published news article
type Article struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Slug         string    `json:"slug" db:"slug"`
	Excerpt      string    `json:"excerpt" db:"excerpt"`
	Content      string    `json:"content" db:"content"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Author       string    `json:"author" db:"author"`
	CategoryID   int       `json:"category_id" db:"category_id"`
	Tags         []string  `json:"tags" db:"-"` // Stored as JSON string in DB
	IsFeatured   bool      `json:"is_featured" db:"is_featured"`
	IsBreaking   bool      `json:"is_breaking_news" db:"is_breaking_news"`
	IsViral      bool      `json:"is_viral" db:"is_viral"`
	ViewCount    int       `json:"view_count" db:"view_count"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
	ShareCount   int       `json:"share_count" db:"share_count"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ArticleInput is the payload accepted when creating an article.
// The id and all counters are assigned by the store, never by the caller.
type ArticleInput struct {
	Title       string    `json:"title" yaml:"title"`
	Slug        string    `json:"slug" yaml:"slug"`
	Excerpt     string    `json:"excerpt" yaml:"excerpt"`
	Content     string    `json:"content" yaml:"content"`
	ImageURL    string    `json:"image_url" yaml:"image_url"`
	Author      string    `json:"author" yaml:"author"`
	CategoryID  int       `json:"category_id" yaml:"category_id"`
	Tags        []string  `json:"tags" yaml:"tags"`
	IsFeatured  bool      `json:"is_featured" yaml:"is_featured"`
	IsBreaking  bool      `json:"is_breaking_news" yaml:"is_breaking_news"`
	IsViral     bool      `json:"is_viral" yaml:"is_viral"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

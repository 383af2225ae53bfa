package models

import (
	"time"
)

// Subscriber is a newsletter signup. Email is unique: subscribing twice
// with the same address converges to a single record.
type Subscriber struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

// SubscriberInput is the payload accepted when subscribing
type SubscriberInput struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// BreakingNews is a short banner item shown above the fold while active
type BreakingNews struct {
	ID        int       `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BreakingNewsInput is the payload accepted when creating a banner item
type BreakingNewsInput struct {
	Content  string `json:"content" yaml:"content"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

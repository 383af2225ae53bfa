package models

import (
	"time"
)

// Workshop is a bookable training session promoted on the portal
type Workshop struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Slug           string    `json:"slug" db:"slug"`
	Description    string    `json:"description" db:"description"`
	ImageURL       string    `json:"image_url" db:"image_url"`
	Date           time.Time `json:"date" db:"date"`
	StartTime      string    `json:"start_time" db:"start_time"`
	EndTime        string    `json:"end_time" db:"end_time"`
	Price          float64   `json:"price" db:"price"`
	AvailableSpots *int      `json:"available_spots" db:"available_spots"` // nil means unlimited
	Location       string    `json:"location" db:"location"`
	IsFeatured     bool      `json:"is_featured" db:"is_featured"`
}

// WorkshopInput is the payload accepted when creating a workshop
type WorkshopInput struct {
	Title          string    `json:"title" yaml:"title"`
	Slug           string    `json:"slug" yaml:"slug"`
	Description    string    `json:"description" yaml:"description"`
	ImageURL       string    `json:"image_url" yaml:"image_url"`
	Date           time.Time `json:"date" yaml:"date"`
	StartTime      string    `json:"start_time" yaml:"start_time"`
	EndTime        string    `json:"end_time" yaml:"end_time"`
	Price          float64   `json:"price" yaml:"price"`
	AvailableSpots *int      `json:"available_spots" yaml:"available_spots"`
	Location       string    `json:"location" yaml:"location"`
	IsFeatured     bool      `json:"is_featured" yaml:"is_featured"`
}

// Event is a one-off happening shown on the events page. Price is display
// text ("Gratis", "Desde 10€"), not a numeric amount.
type Event struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Date         time.Time `json:"date" db:"date"`
	Location     string    `json:"location" db:"location"`
	Price        string    `json:"price" db:"price"`
	ButtonText   string    `json:"button_text" db:"button_text"`
	ButtonAction string    `json:"button_action" db:"button_action"`
	BorderColor  string    `json:"border_color" db:"border_color"`
}

// EventInput is the payload accepted when creating an event
type EventInput struct {
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	Date         time.Time `json:"date" yaml:"date"`
	Location     string    `json:"location" yaml:"location"`
	Price        string    `json:"price" yaml:"price"`
	ButtonText   string    `json:"button_text" yaml:"button_text"`
	ButtonAction string    `json:"button_action" yaml:"button_action"`
	BorderColor  string    `json:"border_color" yaml:"border_color"`
}

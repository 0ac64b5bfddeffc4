package domain

import "time"

// Plant is a catalog item listed by a nursery.
type Plant struct {
	ID          string    `json:"id"`
	NurseryID   string    `json:"nurseryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	Type        string    `json:"type,omitempty"`
	Season      string    `json:"season,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

package domain

import "time"

// Address is a saved shipping address. At checkout it is copied verbatim
// into the order row as a snapshot, so later edits never rewrite history.
type Address struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postalCode,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

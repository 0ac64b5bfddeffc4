package domain

import "time"

// Roles a profile can hold. Nurseries manage inventory and incoming orders,
// customers browse and buy.
const (
	RoleCustomer = "customer"
	RoleNursery  = "nursery"
)

type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasAddress reports whether the profile carries enough of an address to
// ship to when no saved address is available.
func (p Profile) HasAddress() bool {
	return p.Address != "" && p.City != ""
}

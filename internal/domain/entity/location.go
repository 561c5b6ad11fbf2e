// Package entity contains the core business objects of the project.
package entity

import "time"

// Location is a single physical storefront location belonging to a shop.
// Latitude and longitude are always set; a location is never persisted
// without coordinates.
type Location struct {
	ID        int64     `json:"id"`         // Numeric surrogate key, assigned by the store on creation.
	Shop      string    `json:"shop"`       // Owner key of the storefront this location belongs to.
	Name      string    `json:"name"`       // Display name, e.g. "Downtown Flagship".
	Address   string    `json:"address"`    // Street address.
	City      string    `json:"city"`
	Country   string    `json:"country"`
	ZipCode   *string   `json:"zip_code"`   // Optional postal code.
	Phone     *string   `json:"phone"`      // Optional contact number.
	Latitude  float64   `json:"latitude"`   // Signed degrees, [-90, 90].
	Longitude float64   `json:"longitude"`  // Signed degrees, [-180, 180].
	CreatedAt time.Time `json:"created_at"` // Set once on creation.
	UpdatedAt time.Time `json:"updated_at"` // Bumped on every mutation.
}

// AddressText builds the composite free-text address used for geocoding.
func (l *Location) AddressText() string {
	return l.Address + ", " + l.City + ", " + l.Country
}

// Package service defines domain-level service contracts fulfilled by the
// infrastructure layer.
package service

import (
	"context"

	"locator/internal/errors"
)

// ErrNoMatch is returned when the geocoding provider cannot resolve an
// address. Zero results, a non-success status, and network or parse failures
// all collapse into this single value; the caller only learns "no
// coordinates". The underlying cause is logged by the client.
var ErrNoMatch = errors.New("no geocoding match for address")

// Coordinates is a resolved latitude/longitude pair in signed degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a free-text address into coordinates via an external
// lookup service. One network call per invocation, no retries, no caching.
type Geocoder interface {
	// Geocode returns the first match for the address, or ErrNoMatch.
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

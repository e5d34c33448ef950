package kernel

import (
	"errors"
	"fmt"
	"math"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// Geographic coordinate bounds.
const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax float64 = 180

	// earthRadiusKm is the mean Earth radius used for distance calculations.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// ErrAddressIsRequired is returned when attempting to create a Location without an address.
var ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

// Location represents a geographic point with a postal address and validated
// coordinates. It is an immutable value object consumed by cart and order
// aggregates for pickup points, tour meeting points and transfer destinations.
//
// The zero value of Location is invalid and will fail validation - use
// NewLocation to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Taksim Square", "Istanbul", "TR", 41.0370, 28.9850)
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	address   string
	city      string
	country   string
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the given address and coordinates.
// The address must be non-empty; latitude must be within [-90, 90] and
// longitude within [-180, 180].
func NewLocation(address, city, country string, latitude, longitude float64) (Location, error) {
	loc := Location{
		city:    city,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Address returns the street address line.
func (l Location) Address() string {
	return l.address
}

// City returns the city name, empty if not provided.
func (l Location) City() string {
	return l.city
}

// Country returns the country code or name, empty if not provided.
func (l Location) Country() string {
	return l.country
}

// Latitude returns the latitude in degrees, within [-90, 90] for properly
// constructed Location instances.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees, within [-180, 180] for properly
// constructed Location instances.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String returns a human-readable representation of the Location.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%s, %s %s)", l.address, l.city, l.country)
}

// IsEqual compares two locations for equality. Two locations are equal if
// all address fields and coordinates match. Both locations must be properly
// constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceKm calculates the great-circle distance in kilometers between two
// locations using the haversine formula. Both locations must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	istanbul, _ := kernel.NewLocation("Taksim", "Istanbul", "TR", 41.0370, 28.9850)
//	ankara, _ := kernel.NewLocation("Kizilay", "Ankara", "TR", 39.9208, 32.8541)
//	km, _ := istanbul.DistanceKm(ankara) // ~350
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := l.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - l.latitude) * math.Pi / 180
	dLon := (other.longitude - l.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setAddress sets the address line with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	l.address = address
	return nil
}

// setLatitude sets the latitude with range validation.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

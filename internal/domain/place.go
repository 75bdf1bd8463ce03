package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Represents a named location that callers can refer to instead of raw coordinates.
// Name is the display form; Key() is the lookup form used by repositories.
type Place struct {
	PlaceID   uuid.UUID
	Name      string
	Location  Coordinate
	CreatedAt time.Time
}

// NewPlace validates the name and normalizes the location.
func NewPlace(name string, location CoordinateInput) (Place, error) {
	display := CollapseSpaces(name)
	if display == "" {
		return Place{}, fmt.Errorf("new place: name must be non-empty")
	}

	loc, err := Normalize(location)
	if err != nil {
		return Place{}, fmt.Errorf("new place %q: %w", display, err)
	}

	return Place{
		PlaceID:   uuid.New(),
		Name:      display,
		Location:  loc,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Key returns the case-insensitive lookup key for the place.
func (p Place) Key() string { return PlaceKey(p.Name) }

// PlaceKey collapses whitespace and lower-cases a place name.
func PlaceKey(name string) string {
	return strings.ToLower(CollapseSpaces(name))
}

// CollapseSpaces trims s and replaces inner whitespace runs with a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

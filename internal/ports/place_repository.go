package ports

import (
	"context"
	"errors"
	"traveler-service/internal/domain"
)

// ErrPlaceNotFound is returned when a named place is not in the repository.
var ErrPlaceNotFound = errors.New("place not found")

// Port: a boundary for storing and retrieving named places.
// Implementations key places by domain.PlaceKey so lookups are case and whitespace insensitive.
type PlaceRepository interface {
	// Retrieve all stored places ordered by name.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	// Retrieve places by name, keyed by domain.PlaceKey. Missing names are absent from the result.
	GetMany(ctx context.Context, names []string) (map[string]domain.Place, error)
	// Insert or update places by name.
	PutMany(ctx context.Context, places []domain.Place) error
}
